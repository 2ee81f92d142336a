package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "bits", "duration")
	IsPair    bool     // true if values come from the pair list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "pair", Help: "Operation pair to tune", IsPair: true, ValueName: "pair"},
	{Long: "start", Help: "Initial frontier exponent", Values: []string{"8", "10", "12", "14", "16"}, ValueName: "exponent"},
	{Long: "accuracy", Help: "Resolution floor in bits", Values: []string{"100", "500", "1000", "5000"}, ValueName: "bits"},
	{Long: "min-duration", Help: "Calibration floor per comparison", Values: []string{"500ms", "1s", "2s", "5s"}, ValueName: "duration"},
	{Long: "seed", Help: "Pin operand streams for reproducible runs", ValueName: "seed"},
	{Long: "quick", Help: "Skip calibration, probe with single measurements"},
	{Long: "quiet", Short: "q", Help: "Suppress progress display"},
	{Long: "no-color", Help: "Disable colored output"},
	{Short: "v", Help: "Enable debug logging"},
	{Long: "list", Help: "List available operation pairs"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - pairs: List of available operation pair names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, pairs []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, pairs)
	case "zsh":
		return generateZshCompletion(out, pairs)
	case "fish":
		return generateFishCompletion(out, pairs)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, pairs)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// formatPairList joins pair names with space separators.
func formatPairList(pairs []string) string {
	return strings.Join(pairs, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, pairs []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	type caseEntry struct {
		pattern string
		body    string
	}
	var orderedCases []caseEntry
	for _, f := range flagRegistry {
		switch {
		case f.IsPair:
			orderedCases = append(orderedCases, caseEntry{
				pattern: "--" + f.Long,
				body:    `COMPREPLY=( $(compgen -W "${pairs}" -- "${cur}") )`,
			})
		case len(f.Values) > 0:
			orderedCases = append(orderedCases, caseEntry{
				pattern: "--" + f.Long,
				body:    fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
			})
		}
	}

	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(c.pattern)
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	script := fmt.Sprintf(`# Bash completion script for bigtune
# Add this to your ~/.bashrc or ~/.bash_completion

_bigtune_completions() {
    local cur prev opts pairs
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available operation pairs
    pairs="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigtune_completions bigtune
`, strings.Join(opts, " "), formatPairList(pairs), caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, pairs []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef bigtune

# Zsh completion script for bigtune
# Add this to your ~/.zshrc or place in $fpath

_bigtune() {
    local -a pairs
    pairs=(%s all)

    _arguments -s \
%s
}

_bigtune "$@"
`, formatPairList(pairs), strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	if f.IsPair {
		valueSuffix = fmt.Sprintf(":%s:($pairs)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions (e.g., -seed)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, pairs []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for bigtune")
	lines = append(lines, "# Add this to ~/.config/fish/completions/bigtune.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c bigtune -f")
	lines = append(lines, "")

	pairList := formatPairList(pairs)
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, pairList))
	}
	lines = append(lines, "")

	_, err := fmt.Fprint(out, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, pairList string) string {
	var parts []string
	parts = append(parts, "complete -c bigtune")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsPair {
		parts = append(parts, fmt.Sprintf("-xa '%s all'", pairList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions (e.g., -seed)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, pairs []string) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		switch {
		case f.IsPair:
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            $bigtunePairs | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long))
		case len(f.Values) > 0:
			var quotedVals []string
			for _, v := range f.Values {
				quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
			}
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quotedVals, ", ")))
		}
	}

	psPairList := ""
	for i, pair := range pairs {
		if i > 0 {
			psPairList += ", "
		}
		psPairList += fmt.Sprintf("'%s'", pair)
	}

	script := fmt.Sprintf(`# PowerShell completion script for bigtune
# Add this to your $PROFILE

$bigtunePairs = @(%s, 'all')

Register-ArgumentCompleter -CommandName 'bigtune' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psPairList, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
