package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
type FlagCompletion struct {
	Long      string   // long name without "--"
	Short     string   // short name without "-"
	Help      string   // description text
	Values    []string // suggested values; nil for booleans or free-form values
	ValueName string   // value label; empty for boolean flags
}

// flagRegistry lists every fibload flag. All generators read from it.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "duration", Short: "d", Help: "Total run time in seconds", Values: []string{"5", "10", "30", "60"}, ValueName: "seconds"},
	{Long: "threads", Short: "t", Help: "Number of worker threads", Values: []string{"1", "2", "4", "8", "10", "16"}, ValueName: "count"},
	{Long: "sleep-ms", Short: "s", Help: "Delay injected into the selected indices", Values: []string{"0", "10", "50", "100"}, ValueName: "milliseconds"},
	{Long: "start-index", Short: "i", Help: "Fibonacci index of the first worker", Values: []string{"1000", "10000", "100000"}, ValueName: "index"},
	{Long: "delay-on", Help: "Indices that receive the delay", Values: []string{"even", "none"}, ValueName: "selection"},
	{Long: "verbose", Short: "v", Help: "Print full values and a run summary"},
	{Long: "log-level", Help: "Log level", Values: []string{"trace", "debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "log-format", Help: "Log format on stderr", Values: []string{"console", "json"}, ValueName: "format"},
	{Long: "completion", Help: "Generate completion script", Values: CompletionShells, ValueName: "shell"},
}

// CompletionShells are the shells GenerateCompletion supports.
var CompletionShells = []string{"bash", "zsh", "fish"}

// GenerateCompletion writes a completion script for shell to out.
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(CompletionShells, ", "))
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion() string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		patterns := []string{"--" + f.Long}
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
			opts = append(opts, "-"+f.Short)
		}
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(patterns, "|"), strings.Join(f.Values, " "))
	}

	return fmt.Sprintf(`# Bash completion script for fibload
# Add this to your ~/.bashrc or ~/.bash_completion

_fibload_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibload_completions fibload
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion() string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef fibload

# Zsh completion script for fibload
# Add this to your ~/.zshrc or place in $fpath

_arguments -s \
%s
`, strings.Join(args, " \\\n"))
}

// zshArgEntry formats f as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	value := ""
	switch {
	case len(f.Values) > 0:
		value = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		value = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("    '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, value)
	}
	return fmt.Sprintf("    '--%s[%s]%s'", f.Long, f.Help, value)
}

func fishCompletion() string {
	lines := []string{
		"# Fish completion script for fibload",
		"# Add this to ~/.config/fish/completions/fibload.fish",
		"",
		"complete -c fibload -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c fibload"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
