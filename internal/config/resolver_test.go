package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expresskit/cli/internal/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestResolve_Defaults(t *testing.T) {
	testutil.ClearEnv(t)

	resolved, err := Resolve(ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, ".", resolved.Root)
	assert.Equal(t, "collect", resolved.Policy)
	assert.Zero(t, resolved.Jobs)
	assert.False(t, resolved.Atomic)
	for _, v := range resolved.Values {
		assert.Equal(t, SourceDefault, v.Source, v.Key)
	}
}

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       *string
		env        string
		config     string
		wantValue  string
		wantSource ConfigSource
		wantShadow map[ConfigSource]string
	}{
		{
			name:       "flag wins over env and config",
			flag:       strPtr("/flag"),
			env:        "/env",
			config:     "/env",
			wantValue:  "/flag",
			wantSource: SourceFlag,
			wantShadow: map[ConfigSource]string{SourceEnv: "/env"},
		},
		{
			name:       "env wins over config",
			env:        "/env",
			config:     "/env",
			wantValue:  "/env",
			wantSource: SourceEnv,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "config wins over default",
			config:     "/cfg",
			wantValue:  "/cfg",
			wantSource: SourceConfig,
			wantShadow: map[ConfigSource]string{},
		},
		{
			name:       "flag shadows config",
			flag:       strPtr("/flag"),
			config:     "/cfg",
			wantValue:  "/flag",
			wantSource: SourceFlag,
			wantShadow: map[ConfigSource]string{SourceConfig: "/cfg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ClearEnv(t)
			t.Setenv("EXPRESSKIT_ROOT", tt.env)

			resolved, err := Resolve(ResolveOptions{
				RootFlag: tt.flag,
				Config:   &Config{Root: tt.config},
			})
			require.NoError(t, err)

			root := resolved.Values[0]
			assert.Equal(t, "root", root.Key)
			assert.Equal(t, tt.wantValue, resolved.Root)
			assert.Equal(t, tt.wantSource, root.Source)
			assert.Equal(t, tt.wantShadow, root.Shadowed)
		})
	}
}

func TestResolve_StringFlags(t *testing.T) {
	testutil.ClearEnv(t)
	t.Setenv("EXPRESSKIT_POLICY", "collect")

	resolved, err := Resolve(ResolveOptions{
		RootFlag:   strPtr("/srv/api"),
		PolicyFlag: strPtr("fail-fast"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/api", resolved.Root)
	assert.Equal(t, "fail-fast", resolved.Policy)
	assert.Equal(t, SourceFlag, resolved.Values[0].Source)
	assert.Equal(t, SourceFlag, resolved.Values[1].Source)
}

func TestResolve_ExpandsTildeInRoot(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name string
		opts ResolveOptions
	}{
		{name: "config", opts: ResolveOptions{Config: &Config{Root: "~/api"}}},
		{name: "flag", opts: ResolveOptions{RootFlag: strPtr("~/api")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ClearEnv(t)
			t.Setenv("HOME", home)

			resolved, err := Resolve(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(home, "api"), resolved.Root)
			assert.Equal(t, resolved.Root, resolved.Values[0].Value)
		})
	}
}

func TestResolve_TypedValues(t *testing.T) {
	testutil.ClearEnv(t)
	t.Setenv("EXPRESSKIT_JOBS", "8")

	resolved, err := Resolve(ResolveOptions{
		AtomicFlag: boolPtr(true),
		Config:     &Config{Jobs: 2, Policy: "fail-fast"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, resolved.Jobs)
	assert.True(t, resolved.Atomic)
	assert.Equal(t, "fail-fast", resolved.Policy)
}

func TestResolve_JobsFlagOverridesEnv(t *testing.T) {
	testutil.ClearEnv(t)
	t.Setenv("EXPRESSKIT_JOBS", "8")

	resolved, err := Resolve(ResolveOptions{JobsFlag: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, resolved.Jobs)
}

func TestResolve_InvalidValues(t *testing.T) {
	t.Run("non-numeric jobs", func(t *testing.T) {
		testutil.ClearEnv(t)
		t.Setenv("EXPRESSKIT_JOBS", "many")
		_, err := Resolve(ResolveOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jobs")
	})

	t.Run("negative jobs", func(t *testing.T) {
		testutil.ClearEnv(t)
		_, err := Resolve(ResolveOptions{JobsFlag: intPtr(-1)})
		assert.Error(t, err)
	})

	t.Run("non-boolean atomic", func(t *testing.T) {
		testutil.ClearEnv(t)
		t.Setenv("EXPRESSKIT_ATOMIC", "sometimes")
		_, err := Resolve(ResolveOptions{})
		assert.Error(t, err)
	})
}
