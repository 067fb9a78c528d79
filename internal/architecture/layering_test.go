package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module := moduleName(slash)
		layer := detectLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(importPath, "healthtrack/internal/modules/") {
				continue
			}
			if violatesLayerRule(module, layer, importPath) {
				t.Fatalf("forbidden import in %s (%s): %s", slash, layer, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

// inLayer matches both the package itself and anything below it.
func inLayer(path, layer string) bool {
	return strings.Contains(path, "/"+layer+"/") || strings.HasSuffix(path, "/"+layer)
}

func isPortIn(path string) bool { return inLayer(path, "port/in") }

func isDTO(path string) bool { return inLayer(path, "dto") }

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.Contains(importPath, "/internal/modules/"+module+"/")
	if !sameModule {
		if inLayer(importPath, "service") || inLayer(importPath, "adapter") || inLayer(importPath, "usecase") || inLayer(importPath, "port/out") {
			return true
		}
		if isPortIn(importPath) || isDTO(importPath) {
			return layer == "domain"
		}
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return inLayer(importPath, "adapter")
	case "service":
		return inLayer(importPath, "adapter") || inLayer(importPath, "usecase")
	case "domain":
		return !inLayer(importPath, "domain")
	default:
		return false
	}
}

func TestViolatesLayerRule(t *testing.T) {
	t.Parallel()
	const base = "healthtrack/internal/modules/"
	cases := []struct {
		module, layer, imp string
		want               bool
	}{
		{"goals", "usecase", base + "goals/service", false},
		{"goals", "usecase", base + "goals/adapter/out", true},
		{"journal", "usecase", base + "goals/port/in", false},
		{"journal", "usecase", base + "goals/service", true},
		{"nutrition", "domain", base + "journal/domain", false},
		{"nutrition", "domain", base + "journal/dto", true},
		{"goals", "domain", base + "goals/dto", true},
		{"goals", "adapter/in", base + "goals/dto", false},
		{"goals", "adapter/in", base + "goals/service", true},
		{"goals", "service", base + "goals/port/out", false},
		{"healthscore", "usecase", base + "journal/port/out", true},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.imp); got != tc.want {
			t.Fatalf("%s/%s importing %s: got %t, want %t", tc.module, tc.layer, tc.imp, got, tc.want)
		}
	}
}
