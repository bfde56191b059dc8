package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"complete -F _fibload_completions fibload", "--threads|-t)", "--sleep-ms -s", `compgen -W "trace debug info warn error"`, `--log-format)`}},
		{"zsh", []string{"#compdef fibload", "'(-d --duration)'{-d,--duration}'[Total run time in seconds]:seconds:(5 10 30 60)'", "'--version[Show version information]'"}},
		{"fish", []string{"complete -c fibload -f", "complete -c fibload -s i -l start-index", "complete -c fibload -s v -l verbose -d 'Print full values and a run summary'\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q:\n%s", tt.shell, want, buf.String())
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "tcsh")
	if err == nil || !strings.Contains(err.Error(), "unsupported shell: tcsh") {
		t.Errorf("error = %v", err)
	}
}

func TestFlagRegistry_Consistent(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		if f.Long == "" || f.Help == "" {
			t.Errorf("flag %+v needs a long name and help text", f)
		}
		for _, name := range []string{f.Long, f.Short} {
			if name == "" {
				continue
			}
			if seen[name] {
				t.Errorf("duplicate flag name %q", name)
			}
			seen[name] = true
		}
		if len(f.Values) > 0 && f.ValueName == "" {
			t.Errorf("flag %q has values but no value name", f.Long)
		}
	}
}
