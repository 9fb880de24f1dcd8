package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type annotatedRoute struct {
	file      string
	summary   string
	params    []string
	responses map[string]string
}

var (
	routeRe    = regexp.MustCompile(`^// @Router\s+(\S+)\s+\[(\w+)\]`)
	paramRe    = regexp.MustCompile(`^// @Param\s+(\S+)\s`)
	responseRe = regexp.MustCompile(`^// @(?:Success|Failure)\s+(\d+)\s+\{object\}\s+(\S+)`)
)

// annotatedRoutes reads the swag comments of every handler, keyed by "METHOD path"
func annotatedRoutes(t *testing.T) map[string]annotatedRoute {
	t.Helper()
	files, err := filepath.Glob("../internal/controller/*/*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	routes := map[string]annotatedRoute{}
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		fh, err := os.Open(f)
		require.NoError(t, err)

		pkg := filepath.Base(filepath.Dir(f))
		cur := annotatedRoute{file: f, responses: map[string]string{}}
		scanner := bufio.NewScanner(fh)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case strings.HasPrefix(line, "// @Summary "):
				cur.summary = strings.TrimPrefix(line, "// @Summary ")
			case paramRe.MatchString(line):
				cur.params = append(cur.params, paramRe.FindStringSubmatch(line)[1])
			case responseRe.MatchString(line):
				m := responseRe.FindStringSubmatch(line)
				typ := m[2]
				if !strings.Contains(typ, ".") {
					typ = pkg + "." + typ
				}
				cur.responses[m[1]] = typ
			case routeRe.MatchString(line):
				m := routeRe.FindStringSubmatch(line)
				routes[strings.ToUpper(m[2])+" "+m[1]] = cur
				cur = annotatedRoute{file: f, responses: map[string]string{}}
			case !strings.HasPrefix(line, "//"):
				cur = annotatedRoute{file: f, responses: map[string]string{}}
			}
		}
		require.NoError(t, scanner.Err())
		fh.Close()
	}
	return routes
}

type docSchema struct {
	Ref string `json:"$ref"`
}

type docOperation struct {
	Summary    string `json:"summary"`
	Parameters []struct {
		Name string `json:"name"`
	} `json:"parameters"`
	Responses map[string]struct {
		Schema docSchema `json:"schema"`
	} `json:"responses"`
}

type document struct {
	BasePath    string                             `json:"basePath"`
	Paths       map[string]map[string]docOperation `json:"paths"`
	Definitions map[string]json.RawMessage         `json:"definitions"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	var doc document
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	return doc
}

func TestDocument_MatchesHandlerAnnotations(t *testing.T) {
	routes := annotatedRoutes(t)
	doc := readDocument(t)
	assert.Equal(t, "/api/v1", doc.BasePath)

	documented := map[string]bool{}
	for path, methods := range doc.Paths {
		for method := range methods {
			documented[strings.ToUpper(method)+" "+path] = true
		}
	}
	for key := range routes {
		assert.True(t, documented[key], "%s is annotated but not documented", key)
	}
	for key := range documented {
		_, ok := routes[key]
		assert.True(t, ok, "%s is documented but no handler declares it", key)
	}

	for key, route := range routes {
		method, path, _ := strings.Cut(key, " ")
		op, ok := doc.Paths[path][strings.ToLower(method)]
		if !ok {
			continue
		}
		assert.Equal(t, route.summary, op.Summary, key)

		var names []string
		for _, p := range op.Parameters {
			names = append(names, p.Name)
		}
		assert.Equal(t, route.params, names, key)

		assert.Len(t, op.Responses, len(route.responses), key)
		for code, typ := range route.responses {
			resp, ok := op.Responses[code]
			if assert.True(t, ok, "%s misses response %s", key, code) {
				assert.Equal(t, "#/definitions/"+typ, resp.Schema.Ref, "%s %s", key, code)
			}
		}
	}
}

func TestDocument_ReferencesResolve(t *testing.T) {
	doc := readDocument(t)
	refRe := regexp.MustCompile(`"\$ref":\s*"#/definitions/([^"]+)"`)
	for _, m := range refRe.FindAllStringSubmatch(SwaggerInfo.ReadDoc(), -1) {
		_, ok := doc.Definitions[m[1]]
		assert.True(t, ok, "definition %s is missing", m[1])
	}
}
