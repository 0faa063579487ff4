package storage

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/render"
	"github.com/san-kum/armchain/internal/sim"
)

func record(t *testing.T, frames int) *sim.Result {
	t.Helper()
	d := sim.New(config.DefaultConfig())
	result, err := sim.Run(context.Background(), d, render.Size{W: 800, H: 600}, frames)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := record(t, 5)
	runID, err := st.Save(RunMetadata{Preset: "classic", Mode: "chain", Width: 800, Height: 600}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "classic" || meta.Frames != 5 || meta.Arms != 6 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	times, frames, err := st.LoadPoses(runID)
	if err != nil {
		t.Fatalf("load poses failed: %v", err)
	}
	if len(times) != 5 || len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}
	if times[4] != 4 {
		t.Errorf("expected last t=4, got %d", times[4])
	}

	for i, poses := range frames {
		for j, p := range poses {
			want := result.Poses[i][j]
			if math.Abs(p.Tip.X-want.Tip.X) > 1e-5 || math.Abs(p.Base.Y-want.Base.Y) > 1e-5 {
				t.Errorf("frame %d arm %d: got %v->%v, want %v->%v", i, j, p.Base, p.Tip, want.Base, want.Tip)
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected empty list, got %v, %v", runs, err)
	}

	first, _ := st.Save(RunMetadata{Mode: "chain"}, record(t, 2))
	second, _ := st.Save(RunMetadata{Mode: "independent"}, record(t, 3))
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected newest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list for missing dir, got %v, %v", runs, err)
	}
}

func TestLoadPoses_Malformed(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	runDir := filepath.Join(dir, "bad")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "t,base_x0,base_y0,tip_x0,tip_y0\n0,1,2,3\n"
	if err := os.WriteFile(filepath.Join(runDir, "poses.csv"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := st.LoadPoses("bad"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}
