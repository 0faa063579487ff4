package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/sim"
)

var ErrMalformed = errors.New("storage: malformed recording")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
	Arms      int       `json:"arms"`
	Frames    int       `json:"frames"`
	StartT    int64     `json:"start_t"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
}

// Save writes metadata.json and poses.csv for a recorded run. meta.ID,
// Timestamp, Arms, Frames and StartT are filled in from result.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Mode, now.UnixNano())
	meta.Timestamp = now
	meta.Frames = len(result.Poses)
	if len(result.Poses) > 0 {
		meta.Arms = len(result.Poses[0])
		meta.StartT = result.Times[0]
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "poses.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	header := []string{"t"}
	for i := 0; i < meta.Arms; i++ {
		header = append(header,
			fmt.Sprintf("base_x%d", i), fmt.Sprintf("base_y%d", i),
			fmt.Sprintf("tip_x%d", i), fmt.Sprintf("tip_y%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, poses := range result.Poses {
		row := []string{strconv.FormatInt(result.Times[i], 10)}
		for _, p := range poses {
			row = append(row,
				strconv.FormatFloat(p.Base.X, 'f', 6, 64),
				strconv.FormatFloat(p.Base.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Tip.X, 'f', 6, 64),
				strconv.FormatFloat(p.Tip.Y, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns every readable recording, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoses reads back the recorded clock values and arm segments. Only
// Base and Tip are stored; Width and Color are zero.
func (s *Store) LoadPoses(runID string) ([]int64, [][]arm.Pose, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "poses.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(records) < 2 {
		return []int64{}, [][]arm.Pose{}, nil
	}

	times := make([]int64, 0, len(records)-1)
	frames := make([][]arm.Pose, 0, len(records)-1)

	for n, record := range records[1:] {
		if (len(record)-1)%4 != 0 {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns", ErrMalformed, n+1, len(record))
		}
		t, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, n+1, err)
		}

		vals := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			if vals[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, n+1, err)
			}
		}

		poses := make([]arm.Pose, len(vals)/4)
		for i := range poses {
			poses[i].Base = arm.Vec2{X: vals[i*4], Y: vals[i*4+1]}
			poses[i].Tip = arm.Vec2{X: vals[i*4+2], Y: vals[i*4+3]}
		}
		times = append(times, t)
		frames = append(frames, poses)
	}

	return times, frames, nil
}
