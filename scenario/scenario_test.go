package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) RunFile(path string) ([]Outcome, error) {
	args := m.Called(path)
	return args.Get(0).([]Outcome), args.Error(1)
}

// createTempDir creates a temporary directory and registers its removal.
func createTempDir(t testing.TB, prefix string) string {
	tempDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return tempDir
}

func writeFile(t testing.TB, path, content string) {
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const sampleScenario = `name: sample
implication: material
statements:
  - name: conj
    expr: A and B
    values: {A: true, B: false}
    expect: false
  - name: impl
    expr: A => B
    values: {A: false, B: true}
    expect: true
  - name: missing
    expr: A and C
    values: {A: true}
  - name: broken
    expr: A or
    values: {A: true}
quantifiers:
  - name: positive
    domain: [1, 2, 3, -1, -2]
    predicate: "> 0"
    expect_forall: false
    expect_exists: true
agent:
  condition: false
  expect: Take action A
`

func TestParseConfigurationFile(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_config")
	path := filepath.Join(dir, "s.yaml")
	writeFile(t, path, sampleScenario)

	config, err := ParseConfigurationFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sample", config.Name)
	assert.Equal(t, "material", config.Implication)
	require.Len(t, config.Statements, 4)
	assert.Equal(t, map[string]bool{"A": true, "B": false}, config.Statements[0].Values)
	require.NotNil(t, config.Statements[0].Expect)
	assert.False(t, *config.Statements[0].Expect)
	assert.Nil(t, config.Statements[2].Expect)
	require.Len(t, config.Quantifiers, 1)
	assert.Equal(t, []int{1, 2, 3, -1, -2}, config.Quantifiers[0].Domain)
	require.NotNil(t, config.Agent)
	assert.False(t, *config.Agent.Condition)
}

func TestParseConfigurationFile_UnknownField(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_config")
	path := filepath.Join(dir, "s.yaml")
	writeFile(t, path, "name: x\nstatments: []\n")

	_, err := ParseConfigurationFile(path)
	assert.Error(t, err)
}

func TestWriteConfigurationFile_RoundTrip(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_config")
	path := filepath.Join(dir, DefaultConfigPath)

	require.NoError(t, WriteConfigurationFile(path, DefaultConfig()))
	config, err := ParseConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestEngine_DefaultConfigPasses(t *testing.T) {
	t.Parallel()
	outcomes, err := NewEngine().RunConfig("default", DefaultConfig())
	require.NoError(t, err)
	require.Len(t, outcomes, 7)
	for _, o := range outcomes {
		assert.False(t, o.Failed(), "%+v", o)
	}
}

func TestEngine_RunFile(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_engine")
	path := filepath.Join(dir, "s.yaml")
	writeFile(t, path, sampleScenario)

	outcomes, err := NewEngine().RunFile(path)
	require.NoError(t, err)
	require.Len(t, outcomes, 7)

	byName := make(map[string]Outcome)
	for _, o := range outcomes {
		byName[string(o.Kind)+"/"+o.Name] = o
	}

	conj := byName["statement/conj"]
	assert.Equal(t, "false", conj.Result)
	assert.False(t, conj.Failed())
	assert.Equal(t, "{A: true, B: false}", conj.Detail)

	assert.Equal(t, "true", byName["statement/impl"].Result)

	missing := byName["statement/missing"]
	assert.True(t, missing.Failed())
	assert.Contains(t, missing.Err, `unknown variable "C"`)

	broken := byName["statement/broken"]
	assert.True(t, broken.Failed())
	assert.Contains(t, broken.Err, "syntax error at offset 4")

	forall := byName["forall/positive"]
	assert.Equal(t, "false", forall.Result)
	assert.Equal(t, "counterexample -1 at index 3", forall.Detail)
	assert.False(t, forall.Failed())

	exists := byName["exists/positive"]
	assert.Equal(t, "true", exists.Result)
	assert.Equal(t, "witness 1 at index 0", exists.Detail)

	agent := byName["agent/agent"]
	assert.Equal(t, "Take action B", agent.Result)
	assert.True(t, agent.Failed())
}

func TestEngine_LegacyImplication(t *testing.T) {
	t.Parallel()
	yes := true
	config := Config{
		Implication: "legacy",
		Statements: []StatementConfig{
			{Name: "impl", Expr: "A => B", Values: map[string]bool{"A": false, "B": true}, Expect: &yes},
		},
	}
	outcomes, err := NewEngine().RunConfig("legacy", config)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "false", outcomes[0].Result)
	assert.True(t, outcomes[0].Failed())
}

func TestEngine_LegacyRewriteCompound(t *testing.T) {
	t.Parallel()
	config := Config{
		Implication: "legacy",
		Statements: []StatementConfig{
			{Name: "consequent", Expr: "A => B and C", Values: map[string]bool{"A": false, "B": false, "C": false}},
			{Name: "chain", Expr: "A => B => C", Values: map[string]bool{"A": false, "B": true, "C": false}},
		},
	}
	outcomes, err := NewEngine().RunConfig("legacy", config)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "false", outcomes[0].Result)
	assert.Equal(t, "true", outcomes[1].Result)
}

func TestEngine_DefaultValues(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_defaults")
	path := filepath.Join(dir, "s.yaml")
	writeFile(t, path, `name: defaults
values: {A: true, B: true}
statements:
  - name: inherited
    expr: A and B
    expect: true
  - name: overridden
    expr: A and B
    values: {B: false}
    expect: false
  - name: extra
    expr: A and C
    values: {C: true}
`)

	outcomes, err := NewEngine().RunFile(path)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "true", outcomes[0].Result)
	assert.Equal(t, "{A: true, B: true}", outcomes[0].Detail)
	assert.Equal(t, "false", outcomes[1].Result)
	assert.Equal(t, "{A: true, B: false}", outcomes[1].Detail)
	assert.Equal(t, "true", outcomes[2].Result)
	assert.Equal(t, "{A: true, B: true, C: true}", outcomes[2].Detail)
	for _, o := range outcomes {
		assert.False(t, o.Failed(), "%+v", o)
	}
}

func TestEngine_InvalidImplication(t *testing.T) {
	t.Parallel()
	_, err := NewEngine().RunConfig("x", Config{Implication: "fuzzy"})
	assert.Error(t, err)
}

func TestEngine_InvalidPredicate(t *testing.T) {
	t.Parallel()
	config := Config{Quantifiers: []QuantifierConfig{{Name: "q", Domain: []int{1}, Predicate: "~ 1"}}}
	outcomes, err := NewEngine().RunConfig("x", config)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Failed())
	assert.True(t, outcomes[1].Failed())
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expected := []Outcome{{File: "s.yaml", Kind: KindStatement, Name: "x", Result: "true"}}
	runner := new(mockRunner)
	runner.On("RunFile", "s.yaml").Return(expected, nil)

	outcomes, err := ProcessFile(runner, "s.yaml")

	assert.NoError(t, err)
	assert.Equal(t, expected, outcomes)
	runner.AssertExpectations(t)
}

func TestProcessPath_Directory(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	dir := createTempDir(t, "scenario_dir")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	first := filepath.Join(dir, "a.yaml")
	second := filepath.Join(sub, "b.yml")
	bad := filepath.Join(dir, "c.yaml")
	writeFile(t, first, "")
	writeFile(t, second, "")
	writeFile(t, bad, "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	runner := new(mockRunner)
	runner.On("RunFile", first).Return([]Outcome{{File: first, Name: "a"}}, nil)
	runner.On("RunFile", second).Return([]Outcome{{File: second, Name: "b"}}, nil)
	runner.On("RunFile", bad).Return([]Outcome(nil), errors.New("decoding failed"))

	outcomes, err := ProcessPath(ctx, logger, runner, dir, ProcessFile)

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, "a", outcomes[0].Name)
	assert.Equal(t, KindFile, outcomes[1].Kind)
	assert.Equal(t, "decoding failed", outcomes[1].Err)
	assert.True(t, outcomes[1].Failed())
	assert.Equal(t, "b", outcomes[2].Name)
	runner.AssertExpectations(t)
}

func TestProcessPath_SingleFileError(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_file")
	path := filepath.Join(dir, "s.yaml")
	writeFile(t, path, "")

	runner := new(mockRunner)
	runner.On("RunFile", path).Return([]Outcome(nil), errors.New("boom"))

	_, err := ProcessPath(context.Background(), nil, runner, path, ProcessFile)
	assert.EqualError(t, err, "boom")
}

func TestProcessPath_Missing(t *testing.T) {
	t.Parallel()
	_, err := ProcessPath(context.Background(), nil, NewEngine(), "/does/not/exist.yaml", ProcessFile)
	assert.Error(t, err)
}

func TestProcessPath_Cancelled(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_cancel")
	writeFile(t, filepath.Join(dir, "a.yaml"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessPath(ctx, nil, NewEngine(), dir, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_files")
	first := filepath.Join(dir, "a.yaml")
	second := filepath.Join(dir, "b.yaml")
	writeFile(t, first, defaultConfigYAML(t))
	writeFile(t, second, sampleScenario)

	outcomes, err := ProcessFiles(context.Background(), nil, NewEngine(), []string{first, second}, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, outcomes, 14)
	assert.Equal(t, first, outcomes[0].File)
	assert.Equal(t, second, outcomes[len(outcomes)-1].File)
}

func defaultConfigYAML(t testing.TB) string {
	t.Helper()
	dir := createTempDir(t, "scenario_default")
	path := filepath.Join(dir, "d.yaml")
	require.NoError(t, WriteConfigurationFile(path, DefaultConfig()))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWatch(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_watch")
	path := filepath.Join(dir, "w.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var seen []string
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, nil, NewEngine(), dir, func(p string, outcomes []Outcome, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				seen = append(seen, p)
			}
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)
	writeFile(t, path, sampleScenario)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, path, seen[0])
}

func TestWatch_NewSubdirectory(t *testing.T) {
	t.Parallel()
	dir := createTempDir(t, "scenario_watch_subdir")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	seen := make(map[string]bool)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, nil, NewEngine(), dir, func(p string, outcomes []Outcome, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				seen[p] = true
			}
		})
	}()

	time.Sleep(200 * time.Millisecond)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	time.Sleep(200 * time.Millisecond)
	path := filepath.Join(sub, "late.yaml")
	writeFile(t, path, sampleScenario)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen[path]
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
