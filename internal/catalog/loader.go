package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/skadvisory/findna/internal/answers"
)

// questionFile mirrors the on-disk catalog format.
type questionFile struct {
	Questions []questionJSON `json:"questions"`
}

type questionJSON struct {
	ID           string       `json:"id"`
	Phase        int          `json:"phase"`
	Type         string       `json:"type"`
	Prompt       string       `json:"prompt"`
	Subtitle     string       `json:"subtitle"`
	Placeholder  string       `json:"placeholder"`
	Key          string       `json:"key"`
	EntryID      string       `json:"entryId"`
	Optional     bool         `json:"optional"`
	ShowIfKey    string       `json:"showIfKey"`
	ShowIfEquals string       `json:"showIfEquals"`
	Options      []optionJSON `json:"options"`
}

type optionJSON struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// Load reads a catalog definition from a JSON file, validates it against the
// embedded schema, and converts it into a Catalog. Answer keys must be unique
// and single-select questions must carry options.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse validates and converts raw catalog JSON.
func Parse(raw []byte) (Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var file questionFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := make(Catalog, 0, len(file.Questions))
	seen := make(map[string]bool, len(file.Questions))
	for _, qj := range file.Questions {
		if seen[qj.Key] {
			return nil, fmt.Errorf("duplicate answer key %q", qj.Key)
		}
		seen[qj.Key] = true

		q := Question{
			ID:          qj.ID,
			Phase:       qj.Phase,
			Type:        Type(qj.Type),
			Prompt:      qj.Prompt,
			Subtitle:    qj.Subtitle,
			Placeholder: qj.Placeholder,
			Key:         qj.Key,
			EntryID:     qj.EntryID,
			Optional:    qj.Optional,
		}

		if q.Type == TypeSingle && len(qj.Options) == 0 {
			return nil, fmt.Errorf("question %q: single-select requires options", qj.ID)
		}
		for _, oj := range qj.Options {
			q.Options = append(q.Options, Option{
				Label:       oj.Label,
				Value:       oj.Value,
				Description: oj.Description,
				Emoji:       oj.Emoji,
			})
		}

		if qj.ShowIfKey != "" {
			gateKey, want := qj.ShowIfKey, qj.ShowIfEquals
			q.ShowIf = func(set answers.Set) bool {
				return set.Display(gateKey) == want
			}
		}

		cat = append(cat, q)
	}

	return cat, nil
}

// compiledSchema compiles the embedded catalog schema.
func compiledSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog.json", defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}
