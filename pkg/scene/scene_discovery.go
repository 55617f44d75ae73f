package scene

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned when a name matches neither a built-in scene nor a scene file
var ErrUnknownScene = xerrors.New("unknown scene")

const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"

	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier, accepted by Load
	Name        string `json:"name"`               // Display name
	Description string `json:"description"`        // Optional description
	Group       string `json:"group"`              // Grouping category
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Path to YAML file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtin struct {
	info  SceneInfo
	build func(ids *geometry.IDAllocator) *Scene
}

var builtins = []builtin{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Magenta sphere lit by a single point light",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "world",
			Name:        "Default World",
			Description: "Two concentric spheres, the outer one green",
		},
		build: NewWorldScene,
	},
	{
		info: SceneInfo{
			ID:          "silhouette",
			Name:        "Silhouette",
			Description: "Flat-shaded sphere outline without lighting",
		},
		build: NewSilhouetteScene,
	},
}

// Registry resolves scene names against the built-in scenes and a directory of YAML files
type Registry struct {
	Dir        string      // directory scanned for *.yaml and *.yml files; empty disables file scenes
	Logger     core.Logger // receives warnings about unreadable scene files
	AllowPaths bool        // Load also accepts a path to any YAML file outside Dir
}

// NewRegistry creates a registry over dir
func NewRegistry(dir string, logger core.Logger) *Registry {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Registry{Dir: dir, Logger: logger}
}

// FindScenesDir returns the first existing directory among the usual scenes locations,
// or "" when none exists
func FindScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return path
		}
	}
	return ""
}

// Load builds the scene called name. A name is either a built-in ID, the ID of a
// discovered file, or, when AllowPaths is set, a path to a YAML file.
func (r *Registry) Load(name string, ids *geometry.IDAllocator) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.build(ids), nil
		}
	}

	if r.AllowPaths && isSceneFile(name) {
		if _, err := os.Stat(name); err == nil {
			return LoadFile(name, ids)
		}
	}

	files, err := r.ListFiles()
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == name {
			return LoadFile(info.FilePath, ids)
		}
	}

	return nil, xerrors.Errorf("%q: %w", name, ErrUnknownScene)
}

// List returns every known scene, built-ins first then files, each part sorted by ID
func (r *Registry) List() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.Group = builtinGroup
		info.Type = TypeBuiltin
		scenes = append(scenes, info)
	}
	slices.SortFunc(scenes, func(a, b SceneInfo) int { return strings.Compare(a.ID, b.ID) })

	files, err := r.ListFiles()
	if err != nil {
		return nil, err
	}
	return append(scenes, files...), nil
}

// ListFiles scans the registry directory and returns the discovered scene files sorted by ID
func (r *Registry) ListFiles() ([]SceneInfo, error) {
	if r.Dir == "" {
		return []SceneInfo{}, nil
	}
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SceneInfo{}, nil
		}
		return nil, xerrors.Errorf("while scanning scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !isSceneFile(entry.Name()) {
			continue
		}
		path := filepath.Join(r.Dir, entry.Name())
		info, err := ReadSceneInfo(path)
		if err != nil {
			if r.Logger != nil {
				r.Logger.Printf("Skipping scene file %s: %v", path, err)
			}
			continue
		}
		scenes = append(scenes, info)
	}

	slices.SortFunc(scenes, func(a, b SceneInfo) int { return strings.Compare(a.ID, b.ID) })
	return scenes, nil
}

// ReadSceneInfo extracts the name, description and group from a scene file
// without building the scene
func ReadSceneInfo(path string) (SceneInfo, error) {
	id := sceneIDFromPath(path)
	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		Group:    fileGroup,
		Type:     TypeFile,
		FilePath: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return info, xerrors.Errorf("while reading scene file: %w", err)
	}

	var header struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Group       string `yaml:"group"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, xerrors.Errorf("while decoding scene header: %w", err)
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	if header.Group != "" {
		info.Group = header.Group
	}
	info.Description = header.Description
	return info, nil
}

// Groups arranges scenes by their Group field, built-ins first then alphabetically
func Groups(scenes []SceneInfo) ScenesResponse {
	groupMap := make(map[string][]SceneInfo)
	var groupNames []string
	for _, s := range scenes {
		if _, ok := groupMap[s.Group]; !ok && s.Group != builtinGroup {
			groupNames = append(groupNames, s.Group)
		}
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}
	slices.Sort(groupNames)

	response := ScenesResponse{Groups: []SceneGroup{}}
	if builtIn, ok := groupMap[builtinGroup]; ok {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: builtIn})
	}
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return response
}

func isSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func sceneIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
