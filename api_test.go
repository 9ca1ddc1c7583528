// api_test.go
package hclog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKeyServer = Key{ScopeID: ScopeApplication, ID: 0, Name: "server"}
	testKeyStore  = Key{ScopeID: ScopeApplication, ID: 1, Name: "store"}
)

// initTestApp registers the application scope with two keys, plain output
// formatting and a disabled facade. Individual tests swap in capture sinks.
func initTestApp(t *testing.T, lvl Level) {
	t.Helper()
	resetForTest(t)
	server, store := testKeyServer, testKeyStore
	server.InitOptions, store.InitOptions = plainOpts(), plainOpts()
	require.NoError(t, InitKeys("svc", []Key{server, store}, lvl, Disabled(), OptNone))
}

func TestInitKeys_NoKeys(t *testing.T) {
	resetForTest(t)
	err := InitKeys("svc", nil, Info, Disabled(), OptNone)
	assert.ErrorIs(t, err, ErrParseArg)
}

func TestInitScope_Idempotent(t *testing.T) {
	initTestApp(t, Info)
	// a second registration with different defaults is a silent no-op
	require.NoError(t, InitScope(ScopeApplication, "other", Debug10, StdErr(), OptNone))

	global.mu.RLock()
	defer global.mu.RUnlock()
	assert.Equal(t, "svc", global.data.scopes[ScopeApplication].name)
	assert.Equal(t, Info, global.data.scopes[ScopeApplication].defLevel)
}

func TestAddKeys_ScopeMissing(t *testing.T) {
	resetForTest(t)
	err := AddKeys(Key{ScopeID: ScopeLibrary, ID: 0, Name: "codec"})
	assert.ErrorIs(t, err, ErrScopeNotInitialized)
}

func TestHasKey(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()

	ok, err := HasKey(ctx, testKeyServer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasKey(ctx, Key{ScopeID: ScopeApplication, ID: 9, Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HasKey(ctx, Key{ScopeID: ScopeLibrary, ID: 0, Name: "codec"})
	assert.ErrorIs(t, err, ErrScopeNotInitialized)
}

func TestLog_Threshold(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	sink, err := CaptureKey(ctx, testKeyServer)
	require.NoError(t, err)

	require.NoError(t, Log(ctx, testKeyServer, Debug1, "too verbose"))
	require.NoError(t, Log(ctx, testKeyServer, Warn, "disk %d%% full", 93))

	sink.AssertNotLogged(t, Debug1, "too verbose")
	sink.AssertLogged(t, Warn, "warn server disk 93% full")
}

func TestLog_UnregisteredKey(t *testing.T) {
	initTestApp(t, Info)
	err := Log(context.Background(), Key{ScopeID: ScopeApplication, ID: 7, Name: "ghost"}, Info, "lost")
	assert.ErrorIs(t, err, ErrKeyNotInitialized)
}

func TestLog_UninitializedScope(t *testing.T) {
	initTestApp(t, Info)
	err := Log(context.Background(), Key{ScopeID: ScopeLibrary, ID: 0, Name: "codec"}, Info, "lost")
	assert.ErrorIs(t, err, ErrScopeNotInitialized)
}

func TestLog_EmitsInternalDiagnostic(t *testing.T) {
	t.Setenv("HCLOG_DEBUG", "1")
	initTestApp(t, Info)
	ctx := context.Background()
	diag, err := CaptureKey(ctx, KeyInternal)
	require.NoError(t, err)

	require.Error(t, Log(ctx, Key{ScopeID: ScopeApplication, ID: 7, Name: "ghost"}, Info, "lost"))
	diag.AssertLogged(t, Error, `key "ghost" not registered`)
}

func TestLog_CallerCapture(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	require.NoError(t, SetOptions(ctx, testKeyServer, OptFile|OptLine|OptFunc))
	sink, err := CaptureKey(ctx, testKeyServer)
	require.NoError(t, err)

	require.NoError(t, Log(ctx, testKeyServer, Info, "here"))

	entries := sink.All()
	require.Len(t, entries, 1)
	assert.Regexp(t, regexp.MustCompile(`api_test\.go:\d+ TestLog_CallerCapture here$`), entries[0].Message)
}

func TestLogSite_ExplicitCaller(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	require.NoError(t, SetOptions(ctx, testKeyServer, OptFile|OptLine|OptFunc))
	sink, err := CaptureKey(ctx, testKeyServer)
	require.NoError(t, err)

	site := Site{File: "adapter.go", Func: "replay", Line: 12}
	require.NoError(t, LogSite(ctx, testKeyServer, Info, site, "here"))

	sink.AssertLogged(t, Info, "adapter.go:12 replay here")
}

func TestTestLog(t *testing.T) {
	initTestApp(t, Notice)
	ctx := context.Background()

	tests := []struct {
		name     string
		key      Key
		lvl      Level
		expected bool
	}{
		{"at threshold", testKeyServer, Notice, true},
		{"above threshold", testKeyServer, Emerg, true},
		{"below threshold", testKeyServer, Info, false},
		{"unregistered key reports false", Key{ScopeID: ScopeApplication, ID: 7, Name: "ghost"}, Emerg, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := TestLog(ctx, tt.key, tt.lvl)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}

	_, err := TestLog(ctx, Key{ScopeID: ScopeLibrary, ID: 0, Name: "codec"}, Info)
	assert.ErrorIs(t, err, ErrScopeNotInitialized)
}

func TestExactLevelMatch(t *testing.T) {
	initTestApp(t, Notice)
	ctx := context.Background()
	require.NoError(t, SetOptions(ctx, testKeyServer, OptExactLevelMatch))

	ok, err := TestLog(ctx, testKeyServer, Notice)
	require.NoError(t, err)
	assert.True(t, ok, "exact level passes")

	for _, lvl := range []Level{Emerg, Error, Info} {
		ok, err = TestLog(ctx, testKeyServer, lvl)
		require.NoError(t, err)
		assert.False(t, ok, "level %s must not pass exact match", lvl)
	}

	// the sibling key keeps threshold semantics
	ok, err = TestLog(ctx, testKeyStore, Error)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetLevel_OffDisables(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	require.NoError(t, SetLevel(ctx, testKeyServer, Off))

	ok, err := TestLog(ctx, testKeyServer, Emerg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetFacade(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.log")

	require.NoError(t, SetFacade(ctx, testKeyServer, File(path, false)))
	require.NoError(t, Log(ctx, testKeyServer, Info, "to file"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "info server to file")
}

func TestSetFacade_BadTargetKeepsSink(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	sink, err := CaptureKey(ctx, testKeyServer)
	require.NoError(t, err)

	err = SetFacade(ctx, testKeyServer, File(filepath.Join(t.TempDir(), "no", "dir.log"), false))
	require.Error(t, err)

	require.NoError(t, Log(ctx, testKeyServer, Info, "still here"))
	sink.AssertLogged(t, Info, "still here")
}

func TestUnsetAndResetOptions(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()
	sink, err := CaptureKey(ctx, testKeyServer)
	require.NoError(t, err)

	require.NoError(t, UnsetOptions(ctx, testKeyServer, OptSeverity))
	require.NoError(t, Log(ctx, testKeyServer, Info, "bare"))
	sink.AssertLogged(t, Info, "server bare")

	// reset restores the process defaults, not the registration options
	require.NoError(t, ResetOptions(ctx, testKeyServer))
	global.mu.RLock()
	opts := global.data.scopes[ScopeApplication].subs[testKeyServer.ID].options
	global.mu.RUnlock()
	assert.Equal(t, DefaultOptions(), opts)
}

func TestSetKeyLevels(t *testing.T) {
	initTestApp(t, Info)

	levelOf := func(key Key) Level {
		global.mu.RLock()
		defer global.mu.RUnlock()
		return global.data.scopes[key.ScopeID].subs[key.ID].level
	}

	require.NoError(t, SetKeyLevels("store:debug5"))
	assert.Equal(t, Debug5, levelOf(testKeyStore))
	assert.Equal(t, Info, levelOf(testKeyServer))

	// pairs apply in order: the wildcard overwrites the earlier pair
	require.NoError(t, SetKeyLevels("server:debug2,_all:warn"))
	assert.Equal(t, Warn, levelOf(testKeyServer))
	assert.Equal(t, Warn, levelOf(testKeyStore))

	// and a later specific pair overrides the wildcard
	require.NoError(t, SetKeyLevels("_ALL:error", "Store:notice"))
	assert.Equal(t, Error, levelOf(testKeyServer))
	assert.Equal(t, Notice, levelOf(testKeyStore))
}

func TestSetKeyLevels_LastWildcardWins(t *testing.T) {
	initTestApp(t, Info)

	require.NoError(t, SetKeyLevels("server:warn,_all:info"))
	require.NoError(t, SetKeyLevels("server:debug9,_all:debug10"))

	global.mu.RLock()
	defer global.mu.RUnlock()
	assert.Equal(t, Debug10, global.data.scopes[ScopeApplication].subs[testKeyServer.ID].level)
	assert.Equal(t, Debug10, global.data.scopes[ScopeApplication].subs[testKeyStore.ID].level)
}

func TestSetKeyLevels_Errors(t *testing.T) {
	initTestApp(t, Info)

	tests := []struct {
		name     string
		spec     string
		expected error
	}{
		{"missing separator", "server", ErrParseArg},
		{"empty key", ":info", ErrParseArg},
		{"empty level", "server:", ErrParseArg},
		{"unknown level", "server:loud", ErrUnknownLevel},
		{"unknown key", "ghost:info", ErrKeyNotInitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, SetKeyLevels(tt.spec), tt.expected)
		})
	}
}

func TestThresholdLifecycle(t *testing.T) {
	initTestApp(t, Info)
	ctx := context.Background()

	ok, err := TestLog(ctx, testKeyServer, Info)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = TestLog(ctx, testKeyServer, Debug1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetLevel(ctx, testKeyServer, Debug5))
	ok, err = TestLog(ctx, testKeyServer, Debug5)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = TestLog(ctx, testKeyServer, Debug6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListKeys(t *testing.T) {
	initTestApp(t, Info)

	var buf bytes.Buffer
	require.NoError(t, ListKeys(&buf))
	assert.Contains(t, buf.String(), "server, store")
}

func TestDump_GatedByEnv(t *testing.T) {
	initTestApp(t, Info)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf))
	assert.Empty(t, buf.String())

	t.Setenv("HCLOG_DUMP_MODULES", "1")
	require.NoError(t, Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "scope svc (application")
	assert.Contains(t, out, "server")
	assert.Contains(t, out, "store")
}
