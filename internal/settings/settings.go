package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/hjson/hjson-go/v4"
	"os"
)

const DefaultPort = 3000

var ErrInvalidPort = errors.New("port must be between 1 and 65535")

type Server struct {
	Port      int             `json:"port"`
	Title     string          `json:"title,omitempty"`
	PublicDir string          `json:"public_dir"`
	Minify    bool            `json:"minify,omitempty"`
	People    []people.Person `json:"people,omitempty"`
}

func NewDefault(port int) *Server {
	return &Server{
		Port:      port,
		Title:     "Famous People",
		PublicDir: "public",
	}
}

// Load merges the Hjson or JSONC file at filename into s. A missing file
// leaves s untouched.
func (s *Server) Load(filename string) error {
	var bytes, err = os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := hjson.Unmarshal(bytes, s); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

func (s Server) Save(filename string) error {
	var bytes, err = json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

func (s Server) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, s.Port)
	}
	return nil
}

// Dataset returns the people configured in the settings file, falling back to
// the embedded default dataset.
func (s Server) Dataset() []people.Person {
	if len(s.People) > 0 {
		return s.People
	}
	return people.DefaultDataset()
}
