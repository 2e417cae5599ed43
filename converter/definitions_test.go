package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swagschema/schemaerrors"
)

func TestConvertSchemaDefinitions(t *testing.T) {
	t.Run("each entry converts standalone with refs left bare", func(t *testing.T) {
		definitions := map[string]any{
			"Pet": map[string]any{
				"type":          "object",
				"discriminator": "petType",
				"properties": map[string]any{
					"tag": map[string]any{"$ref": "#/definitions/Tag"},
				},
			},
			"Tag": map[string]any{
				"type":       "string",
				"x-nullable": true,
			},
		}

		converted, err := ConvertSchemaDefinitions(definitions)
		require.NoError(t, err)
		require.Len(t, converted, 2)

		pet := converted["Pet"].(map[string]any)
		assert.NotContains(t, pet, "discriminator")
		assert.NotContains(t, pet, "definitions", "cross-references are not copied into entries")
		assert.Equal(t, map[string]any{"$ref": "#/definitions/Tag"},
			pet["properties"].(map[string]any)["tag"])

		assert.Equal(t, map[string]any{"type": []any{"string", "null"}}, converted["Tag"])
	})

	t.Run("mutually referential definitions convert", func(t *testing.T) {
		definitions := map[string]any{
			"A": map[string]any{
				"properties": map[string]any{
					"b": map[string]any{"$ref": "#/definitions/B"},
				},
			},
			"B": map[string]any{
				"properties": map[string]any{
					"a": map[string]any{"$ref": "#/definitions/A"},
				},
			},
		}

		converted, err := ConvertSchemaDefinitions(definitions)
		require.NoError(t, err)
		assert.Len(t, converted, 2)
	})

	t.Run("examples resolve against sibling definitions", func(t *testing.T) {
		definitions := map[string]any{
			"Pet": map[string]any{
				"type":    "object",
				"example": map[string]any{"$ref": "#/definitions/PetExample"},
			},
			"PetExample": map[string]any{"name": "rex"},
		}

		converted, err := ConvertSchemaDefinitions(definitions)
		require.NoError(t, err)

		pet := converted["Pet"].(map[string]any)
		assert.Equal(t, []any{map[string]any{"name": "rex"}}, pet["examples"])
	})

	t.Run("non-object definitions pass through copied", func(t *testing.T) {
		definitions := map[string]any{
			"Anything": true,
			"Values":   []any{1, 2},
		}

		converted, err := ConvertSchemaDefinitions(definitions)
		require.NoError(t, err)
		assert.Equal(t, true, converted["Anything"])
		assert.Equal(t, []any{1, 2}, converted["Values"])
	})

	t.Run("input definitions are not mutated", func(t *testing.T) {
		definitions := map[string]any{
			"Tag": map[string]any{"type": "string", "x-nullable": true},
		}
		_, err := ConvertSchemaDefinitions(definitions)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"type": "string", "x-nullable": true}, definitions["Tag"])
	})

	t.Run("entry errors name the failing definition", func(t *testing.T) {
		definitions := map[string]any{
			"Broken": map[string]any{
				"example": map[string]any{"$ref": "#/definitions/Missing"},
			},
		}
		_, err := ConvertSchemaDefinitions(definitions)
		require.Error(t, err)
		assert.ErrorIs(t, err, schemaerrors.ErrReferenceNotFound)
		assert.Contains(t, err.Error(), `"Broken"`)
	})

	t.Run("empty map yields empty map", func(t *testing.T) {
		converted, err := ConvertSchemaDefinitions(map[string]any{})
		require.NoError(t, err)
		assert.Empty(t, converted)
	})
}
