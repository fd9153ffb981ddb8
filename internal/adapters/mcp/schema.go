package mcpadapter

// JSON schema property builders for nested tool parameters. Top-level
// parameters use the typed mcp option builders; nested object properties
// are plain schema maps.

func propString(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func propStringEnum(description string, values []string) map[string]any {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return map[string]any{"type": "string", "description": description, "enum": enum}
}

func propInteger(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func propNumber(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func propBoolean(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}
