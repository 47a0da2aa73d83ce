package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rickenator/vela/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Run_CleanSourceReachesAnalyzeStage(t *testing.T) {
	p := NewPipeline()
	res := p.Run("fn<Int> main()\n    return 1;\n", "t.vela")
	assert.Equal(t, StageAnalyze, res.Stage)
	assert.False(t, res.HasErrors())
	require.NotNil(t, res.Module)
}

func TestPipeline_Run_SyntaxErrorStopsAtParseStage(t *testing.T) {
	p := NewPipeline()
	res := p.Run("let x = ;", "t.vela")
	assert.Equal(t, StageParse, res.Stage)
	assert.True(t, res.HasErrors())
	assert.Nil(t, res.Module)
}

func TestPipeline_Run_ParseOnlySkipsAnalysis(t *testing.T) {
	p := &Pipeline{ParseOnly: true}
	res := p.Run("fn<Int> main()\n    return undeclared;\n", "t.vela")
	assert.Equal(t, StageParse, res.Stage)
	for _, d := range res.Diagnostics {
		assert.NotEqual(t, diag.CodeUnknownIdentifier, d.Code)
	}
}

func TestPipeline_RunFile_MissingFileReportsError(t *testing.T) {
	p := NewPipeline()
	_, err := p.RunFile(filepath.Join(t.TempDir(), "does-not-exist.vela"))
	assert.Error(t, err)
}

func TestRunMany_PreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 3)
	sources := []string{
		"fn<Int> a()\n    return 1;\n",
		"let x = ;",
		"fn<Int> c()\n    return 3;\n",
	}
	for i, src := range sources {
		path := filepath.Join(dir, string(rune('a'+i))+".vela")
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		paths[i] = path
	}

	results := RunMany(paths, nil, 2)
	require.Len(t, results, 3)
	assert.Equal(t, paths[0], results[0].File)
	assert.Equal(t, paths[1], results[1].File)
	assert.Equal(t, paths[2], results[2].File)
	assert.False(t, results[0].HasErrors())
	assert.True(t, results[1].HasErrors())
	assert.False(t, results[2].HasErrors())
}
