package resume

import (
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchemaJSON string

var (
	documentSchemaOnce sync.Once
	documentSchema     *gojsonschema.Schema
	documentSchemaErr  error
)

// validateDocumentBlob checks a persisted blob against the document schema
// before it is trusted for unmarshalling. A mis-shaped blob (wrong types,
// extra nesting, not an object) is rejected as a whole; missing optional
// fields are tolerated and repaired later by fillDefaults.
func validateDocumentBlob(raw []byte) error {
	documentSchemaOnce.Do(func() {
		documentSchema, documentSchemaErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(documentSchemaJSON))
	})
	if documentSchemaErr != nil {
		return fmt.Errorf("compile schema: %w", documentSchemaErr)
	}

	result, err := documentSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fmt.Fprintf(&sb, "%s: %s", field, desc.Description())
	}
	return fmt.Errorf("invalid document blob: %s", sb.String())
}
