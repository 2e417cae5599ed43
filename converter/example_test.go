package converter_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/erraggy/swagschema/converter"
)

// Example demonstrates converting a Swagger schema whose references are
// copied into the result's definitions map
func Example() {
	swagger := map[string]any{
		"definitions": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}
	schema := map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "#/definitions/Pet"},
	}

	result, err := converter.ConvertSchema(schema, swagger, swagger)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	// Output: {"definitions":{"Pet":{"type":"object"}},"items":{"$ref":"#/definitions/Pet"},"type":"array"}
}

// Example_nullable demonstrates how x-nullable widens the declared type
func Example_nullable() {
	swagger := map[string]any{"definitions": map[string]any{}}
	schema := map[string]any{
		"type":       "string",
		"x-nullable": true,
	}

	result, err := converter.ConvertSchema(schema, swagger, swagger)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	// Output: {"type":["string","null"]}
}

// Example_withOptions demonstrates conversion using functional options
func Example_withOptions() {
	swagger := map[string]any{
		"definitions": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}
	schema := map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "#/definitions/Pet"},
	}

	result, err := converter.ConvertSchemaWithOptions(schema, swagger, swagger,
		converter.WithCopyDefinitions(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	// Output: {"items":{"$ref":"#/definitions/Pet"},"type":"array"}
}

// ExampleConvertSchemaDefinitions demonstrates batch conversion of a
// document's definitions section
func ExampleConvertSchemaDefinitions() {
	definitions := map[string]any{
		"Tag": map[string]any{
			"type":       "string",
			"x-nullable": true,
		},
	}

	converted, err := converter.ConvertSchemaDefinitions(definitions)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(converted)
	fmt.Println(string(out))
	// Output: {"Tag":{"type":["string","null"]}}
}
