package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/item"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeConfig(t, `{
		"version": "1.0",
		"items": [
			{"name": "Oak Wood", "kind": "resource", "resource_type": "wood"},
			{"name": "Wooden Axe", "kind": "weapon", "weapon_type": "tool", "damage": 25, "max_durability": 50},
			{"name": "Cabin Key", "kind": "key_item", "key_id": "cabin_door", "is_quest_item": true}
		]
	}`)

	catalog, err := item.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	def, ok := catalog.GetByName("Wooden Axe")
	require.True(t, ok)
	assert.Equal(t, domain.KindWeapon, def.Kind)
	assert.Equal(t, 50, def.MaxDurability)

	_, ok = catalog.GetByName("Golden Throne")
	assert.False(t, ok)

	assert.Equal(t, []string{"Oak Wood", "Wooden Axe", "Cabin Key"}, catalog.Names())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "duplicate name",
			content: `{"items": [{"name": "Stone", "kind": "resource", "resource_type": "stone"}, {"name": "Stone", "kind": "resource", "resource_type": "stone"}]}`,
			wantErr: item.ErrDuplicateName,
		},
		{
			name:    "empty name",
			content: `{"items": [{"name": "", "kind": "resource", "resource_type": "stone"}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "name too long",
			content: `{"items": [{"name": "An Exceedingly Long Item Name Indeed", "kind": "resource", "resource_type": "stone"}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "unknown kind",
			content: `{"items": [{"name": "Thing", "kind": "gadget"}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "resource missing subtype",
			content: `{"items": [{"name": "Stone", "kind": "resource"}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "weapon missing durability",
			content: `{"items": [{"name": "Axe", "kind": "weapon", "weapon_type": "tool", "damage": 5}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "key item missing key id",
			content: `{"items": [{"name": "Key", "kind": "key_item"}]}`,
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "no items",
			content: `{"items": []}`,
			wantErr: item.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := item.Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := item.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := item.Load(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

// TestDefinition_NewStack verifies the template-to-stack dispatch for each
// item kind.
func TestDefinition_NewStack(t *testing.T) {
	wood := item.Definition{Name: "Oak Wood", Kind: domain.KindResource, Resource: domain.ResourceWood}
	stack := wood.NewStack(25)
	assert.Equal(t, domain.KindResource, stack.Kind)
	assert.Equal(t, 25, stack.Quantity)

	axe := item.Definition{Name: "Wooden Axe", Kind: domain.KindWeapon, WeaponType: domain.WeaponTool, Damage: 25, MaxDurability: 50}
	stack = axe.NewStack(10)
	assert.Equal(t, 1, stack.Quantity, "weapons ignore the requested quantity")
	assert.Equal(t, 50, stack.Durability)

	key := item.Definition{Name: "Cabin Key", Kind: domain.KindKeyItem, KeyID: "cabin_door"}
	stack = key.NewStack(10)
	assert.Equal(t, 1, stack.Quantity)
	assert.Equal(t, "cabin_door", stack.KeyID)
}
