package catalog

// catalogSchema validates an external catalog file before it replaces the
// built-in question set. Gated questions express their visibility rule
// declaratively as showIfKey/showIfEquals pairs.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"phase": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"single", "text", "email", "tel"},
					},
					"prompt":      map[string]any{"type": "string", "minLength": 1},
					"subtitle":    map[string]any{"type": "string"},
					"placeholder": map[string]any{"type": "string"},
					"key":         map[string]any{"type": "string", "minLength": 1},
					"entryId":     map[string]any{"type": "string"},
					"optional":    map[string]any{"type": "boolean"},
					"showIfKey":   map[string]any{"type": "string"},
					"showIfEquals": map[string]any{
						"type": "string",
					},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"label":       map[string]any{"type": "string", "minLength": 1},
								"value":       map[string]any{"type": "string"},
								"description": map[string]any{"type": "string"},
								"emoji":       map[string]any{"type": "string"},
							},
							"required":             []any{"label"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "phase", "type", "prompt", "key"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
