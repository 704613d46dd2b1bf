package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	log      *[]string
	initArgs []any
	startErr error
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	f.initArgs = args
	*f.log = append(*f.log, "init:"+f.name)
	return nil
}

func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "network", deps: []string{"audio"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())
	h.StopAll()

	assert.Equal(t, []string{
		"init:audio", "init:network",
		"start:audio", "start:network",
		"stop:network", "stop:audio",
	}, log)
}

func TestHubConfigureOverridesArgs(t *testing.T) {
	var log []string
	h := NewHub()
	a := &fakeService{name: "audio", log: &log}
	b := &fakeService{name: "network", log: &log}
	require.NoError(t, h.Register(a))
	require.NoError(t, h.Register(b))

	h.Configure("audio", true)
	require.NoError(t, h.InitAll("shared"))

	assert.Equal(t, []any{true}, a.initArgs)
	assert.Equal(t, []any{"shared"}, b.initArgs)
}

func TestHubErrors(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	assert.ErrorIs(t, h.Register(&fakeService{name: "a", log: &log}), ErrDuplicate)

	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"ghost"}, log: &log}))
	assert.ErrorIs(t, h.InitAll(), ErrMissingDependency)

	cyc := NewHub()
	require.NoError(t, cyc.Register(&fakeService{name: "x", deps: []string{"y"}, log: &log}))
	require.NoError(t, cyc.Register(&fakeService{name: "y", deps: []string{"x"}, log: &log}))
	assert.ErrorIs(t, cyc.InitAll(), ErrCircularDependency)
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log, startErr: errors.New("boom")}))

	require.NoError(t, h.InitAll())
	err := h.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service b start failed")
	assert.Equal(t, "stop:a", log[len(log)-1])
}

type failingInit struct {
	fakeService
}

func (f *failingInit) Init(args ...any) error {
	*f.log = append(*f.log, "init:"+f.name)
	return errors.New("no device")
}

func TestHubInitRollbackStopsInitializedOnly(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "network", deps: []string{"audio"}, log: &log}))
	require.NoError(t, h.Register(&failingInit{fakeService{name: "status", deps: []string{"network"}, log: &log}}))

	err := h.InitAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")

	// Initialized services are stopped even though none started; the failed one is not
	assert.Equal(t, []string{
		"init:audio", "init:network", "init:status",
		"stop:network", "stop:audio",
	}, log)
	assert.NoError(t, h.StopAll())
}

func TestHubStopAllJoinsErrors(t *testing.T) {
	var log []string
	h := NewHub()
	bad := &failingStop{fakeService: fakeService{name: "a", log: &log}}
	require.NoError(t, h.Register(bad))
	require.NoError(t, h.Register(&fakeService{name: "b", log: &log}))

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())

	err := h.StopAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service a stop")
	assert.Equal(t, "stop:b", log[len(log)-1])

	// Nothing left running
	assert.NoError(t, h.StopAll())
}

type failingStop struct {
	fakeService
}

func (f *failingStop) Stop() error {
	return errors.New("device busy")
}

func TestHubLookupAndNames(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "status", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))

	svc, ok := Lookup[*fakeService](h, "status")
	require.True(t, ok)
	assert.Equal(t, "status", svc.Name())

	_, ok = Lookup[*failingStop](h, "status")
	assert.False(t, ok)
	_, ok = Lookup[*fakeService](h, "ghost")
	assert.False(t, ok)

	assert.Equal(t, []string{"audio", "status"}, h.Names())
}
