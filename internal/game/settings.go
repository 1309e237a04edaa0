package game

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontend backends selectable from the settings file. The -term flag
// overrides whatever the file says.
const (
	BackendGL       = "gl"
	BackendTerminal = "term"
)

// Settings is the optional YAML config file. Every field has a
// default, so a missing file is not an error.
type Settings struct {
	Scale         int     `yaml:"scale"`
	MusicVolume   float64 `yaml:"music_volume"`
	SFXVolume     float64 `yaml:"sfx_volume"`
	Seed          uint64  `yaml:"seed"`
	Backend       string  `yaml:"backend"`
	HighScoreFile string  `yaml:"highscore_file"`
}

func DefaultSettings() Settings {
	return Settings{
		Scale:         DefaultScale,
		MusicVolume:   0.25,
		SFXVolume:     0.5,
		Backend:       BackendGL,
		HighScoreFile: defaultHighScorePath(),
	}
}

func defaultHighScorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".beatsurvivor_highscore"
	}
	return filepath.Join(home, ".beatsurvivor_highscore")
}

// LoadSettings reads path over the defaults. Absent keys keep their
// default; a missing file returns pure defaults with no error. On a
// read or parse error the defaults come back along with the error so
// the caller can warn and keep going.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	s.Scale = clamp(s.Scale, 1, 12)
	s.MusicVolume = clampF(s.MusicVolume, 0, 1)
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
	if strings.ToLower(strings.TrimSpace(s.Backend)) == BackendTerminal {
		s.Backend = BackendTerminal
	} else {
		s.Backend = BackendGL
	}
	return s, nil
}

// ResolveSeed picks the simulation seed: the BEAT_SEED env var wins,
// then a nonzero settings value, then the clock.
func (s Settings) ResolveSeed() uint64 {
	if env := os.Getenv("BEAT_SEED"); env != "" {
		if v, err := strconv.ParseUint(strings.TrimSpace(env), 10, 64); err == nil {
			return v
		}
	}
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}

// LoadHighScore reads the saved best score. Missing or mangled files
// read as zero.
func LoadHighScore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// SaveHighScore writes the best score. Best effort; the game never
// fails over a scoreboard file.
func SaveHighScore(path string, score int) {
	if path == "" {
		return
	}
	_ = os.WriteFile(path, []byte(strconv.Itoa(score)+"\n"), 0o644)
}
