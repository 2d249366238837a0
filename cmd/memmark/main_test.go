package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memmark/internal/platform"
	"github.com/aretw0/memmark/pkg/adapters/fs"
	"github.com/aretw0/memmark/pkg/core"
)

func TestFilterMarks(t *testing.T) {
	store := core.NewStore(nil, nil)
	require.NoError(t, store.SetKey("mon_wolf", '3'))
	require.NoError(t, store.SetKey("mon_zombie", '9'))
	require.NoError(t, store.SetKey("water_clean", '1'))

	all, err := filterMarks(store, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	monsters, err := filterMarks(store, "mon_*")
	require.NoError(t, err)
	assert.Equal(t, []listEntry{
		{Item: "mon_wolf", Mark: "3", Level: 3},
		{Item: "mon_zombie", Mark: "9", Level: 9},
	}, monsters)

	_, err = filterMarks(store, "[")
	assert.Error(t, err)
}

func TestSlot(t *testing.T) {
	t.Cleanup(func() { worldDir, player = "", "" })

	worldDir, player = "/saves/world", ""
	_, err := slot()
	assert.ErrorContains(t, err, "--player")

	player = "Ada"
	s, err := slot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/saves/world", "QWRh.idr.json"), s.SideFile())
}

func TestSlot_SearchesWorldRoot(t *testing.T) {
	t.Cleanup(func() { worldDir, player = "", "" })

	world := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(world, platform.WorldIndicator), []byte("{}"), 0644))
	t.Chdir(world)

	worldDir, player = "", "Ada"
	s, err := slot()
	require.NoError(t, err)
	want, _ := filepath.Abs(world)
	assert.Equal(t, want, s.WorldDir)
}

func TestLookupItem(t *testing.T) {
	t.Cleanup(func() { catalogPath = "" })

	catalogPath = ""
	it, err := lookupItem("rock")
	require.NoError(t, err)
	assert.Equal(t, "rock", it.TypeID())

	catalogPath = filepath.Join("..", "..", "pkg", "catalog", "testdata", "catalog.yaml")
	it, err = lookupItem("bottle_of_water")
	require.NoError(t, err)
	assert.Equal(t, core.Key("water_clean"), core.Resolver{}.Resolve(it))
}

func TestRefreshMarks(t *testing.T) {
	ctx := context.Background()
	slot := core.SaveSlot{WorldDir: t.TempDir(), Player: "Ada"}
	require.NoError(t, os.WriteFile(slot.SaveFile(), []byte("save"), 0644))
	repo := fs.NewRepository(fs.Config{Slot: slot, Logger: slog.New(slog.DiscardHandler)})
	store, err := platform.New(slot, platform.WithRepository(repo))
	require.NoError(t, err)

	good := []byte(`[{"item": "rock", "value": 51}]`)
	require.NoError(t, os.WriteFile(slot.SideFile(), good, 0644))

	var out, errOut bytes.Buffer
	refreshMarks(ctx, store, &out, &errOut)
	assert.Equal(t, "-- 1 marks\n3 rock\n", out.String())
	assert.Empty(t, errOut.String())

	t.Run("Corrupt Side-File Is Left Alone", func(t *testing.T) {
		partial := []byte(`[{"item": "rock", "val`)
		require.NoError(t, os.WriteFile(slot.SideFile(), partial, 0644))

		out.Reset()
		errOut.Reset()
		refreshMarks(ctx, store, &out, &errOut)

		got, err := os.ReadFile(slot.SideFile())
		require.NoError(t, err)
		assert.Equal(t, partial, got)
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "keeping last marks")
		assert.Equal(t, core.Mark('3'), store.GetKey("rock"))
	})

	t.Run("Missing Side-File Is Not Created", func(t *testing.T) {
		require.NoError(t, os.Remove(slot.SideFile()))

		errOut.Reset()
		refreshMarks(ctx, store, &out, &errOut)

		assert.NoFileExists(t, slot.SideFile())
		assert.Contains(t, errOut.String(), "no side-file yet")
	})
}
