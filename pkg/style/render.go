package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/outfit/pkg/install"
	"github.com/arthur-debert/outfit/pkg/secrets"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Renderer defines the interface for rendering outfit's result types
type Renderer interface {
	RenderLinkResult(result *types.LinkResult) string
	RenderStatusReport(report *types.StatusReport) string
	RenderPushResult(result *secrets.PushResult) string
	RenderInstallResult(result *install.Result) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderLinkResult renders the outcome of an apply run
func (r *TerminalRenderer) RenderLinkResult(result *types.LinkResult) string {
	if len(result.Entries) == 0 {
		return MutedStyle.Render("Nothing selected, nothing linked")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Link results") + "\n\n")

	for _, res := range result.Entries {
		line := fmt.Sprintf("%s %s %s %s",
			ActionGlyph(res.Action),
			Bold(fmt.Sprintf("%-16s", res.Entry.Name)),
			SymlinkStyle.Render("→"),
			PathStyle.Render(res.Entry.Target))

		switch {
		case res.Action == types.ActionBackedUp:
			line += " " + BackupStyle.Render(fmt.Sprintf("(previous file moved to %s)", res.Backup))
		case res.Action == types.ActionSkipped:
			line += " " + MutedStyle.Render("(source missing, skipped)")
		case res.Action == types.ActionFailed && res.Error != nil:
			line += " " + ErrorStyle.Render(res.Error.Error())
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + SubtitleStyle.Render(linkSummary(result)))
	return b.String()
}

// RenderStatusReport renders the read-only status of every selected entry
func (r *TerminalRenderer) RenderStatusReport(report *types.StatusReport) string {
	if len(report.Entries) == 0 {
		return MutedStyle.Render("Nothing selected")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Dotfile status") + "\n\n")

	for _, entry := range report.Entries {
		line := fmt.Sprintf("%s %s %s %s",
			StateGlyph(entry.State),
			StateStyle(entry.State).Sprint(fmt.Sprintf("%-9s", string(entry.State))),
			Bold(fmt.Sprintf("%-16s", entry.Entry.Name)),
			PathStyle.Render(entry.Entry.Target))
		if entry.Detail != "" {
			line += " " + MutedStyle.Render("("+entry.Detail+")")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + SubtitleStyle.Render(fmt.Sprintf("%d of %d linked",
		report.CountState(types.StateLinked), len(report.Entries))))
	return b.String()
}

// RenderPushResult renders the outcome of a secrets push
func (r *TerminalRenderer) RenderPushResult(result *secrets.PushResult) string {
	title := "Secrets push to " + result.Target
	if result.DryRun {
		title += " (dry run)"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	for _, kr := range result.Kinds {
		line := fmt.Sprintf("%s %s %s",
			outcomeGlyph(kr.Outcome),
			SecretsStyle.Render(fmt.Sprintf("%-4s", string(kr.Kind))),
			PathStyle.Render(kr.Source))
		switch kr.Outcome {
		case secrets.OutcomeSkipped:
			line += " " + MutedStyle.Render("(local directory missing)")
		case secrets.OutcomeFailed:
			if kr.Error != nil {
				line += " " + ErrorStyle.Render(kr.Error.Error())
			}
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + SubtitleStyle.Render(pushSummary(result)))
	return b.String()
}

// RenderInstallResult renders the outcome of a provisioning run
func (r *TerminalRenderer) RenderInstallResult(result *install.Result) string {
	title := "Provisioning from " + result.Dir
	if result.DryRun {
		title += " (dry run)"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	for _, step := range result.Steps {
		line := fmt.Sprintf("%s %s",
			SuccessIndicator,
			InstallStyle.Render(fmt.Sprintf("%-12s", string(step.Step))))
		if len(step.Packages) == 0 {
			line += " " + MutedStyle.Render("nothing to install")
		} else {
			line += " " + MutedStyle.Render(strings.Join(step.Packages, ", "))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + SubtitleStyle.Render(fmt.Sprintf("%d packages across %d steps",
		result.PackageCount(), len(result.Steps))))
	return b.String()
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderLinkResult renders a plain apply report
func (r *PlainRenderer) RenderLinkResult(result *types.LinkResult) string {
	if len(result.Entries) == 0 {
		return "Nothing selected, nothing linked"
	}

	var b strings.Builder
	for _, res := range result.Entries {
		switch res.Action {
		case types.ActionBackedUp:
			b.WriteString(fmt.Sprintf("linked  %s -> %s (backup at %s)\n",
				res.Entry.Name, res.Entry.Target, res.Backup))
		case types.ActionLinked, types.ActionRelinked:
			b.WriteString(fmt.Sprintf("linked  %s -> %s\n", res.Entry.Name, res.Entry.Target))
		case types.ActionSkipped:
			b.WriteString(fmt.Sprintf("skipped %s (source missing)\n", res.Entry.Name))
		case types.ActionFailed:
			b.WriteString(fmt.Sprintf("failed  %s: %v\n", res.Entry.Name, res.Error))
		}
	}
	b.WriteString(linkSummary(result))
	return b.String()
}

// RenderStatusReport renders a plain status report
func (r *PlainRenderer) RenderStatusReport(report *types.StatusReport) string {
	if len(report.Entries) == 0 {
		return "Nothing selected"
	}

	var b strings.Builder
	for _, entry := range report.Entries {
		b.WriteString(fmt.Sprintf("%-9s %s -> %s", string(entry.State), entry.Entry.Name, entry.Entry.Target))
		if entry.Detail != "" {
			b.WriteString(" (" + entry.Detail + ")")
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d of %d linked",
		report.CountState(types.StateLinked), len(report.Entries)))
	return b.String()
}

// RenderPushResult renders a plain secrets push report
func (r *PlainRenderer) RenderPushResult(result *secrets.PushResult) string {
	var b strings.Builder
	if result.DryRun {
		b.WriteString(fmt.Sprintf("Dry run, nothing pushed to %s\n", result.Target))
	}
	for _, kr := range result.Kinds {
		b.WriteString(fmt.Sprintf("%-7s %s (%s)", string(kr.Outcome), string(kr.Kind), kr.Source))
		if kr.Error != nil {
			b.WriteString(": " + kr.Error.Error())
		}
		b.WriteString("\n")
	}
	b.WriteString(pushSummary(result))
	return b.String()
}

// RenderInstallResult renders a plain provisioning report
func (r *PlainRenderer) RenderInstallResult(result *install.Result) string {
	var b strings.Builder
	for _, step := range result.Steps {
		if len(step.Packages) == 0 {
			b.WriteString(fmt.Sprintf("%-12s nothing to install\n", string(step.Step)))
			continue
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", string(step.Step), strings.Join(step.Packages, ", ")))
	}
	b.WriteString(fmt.Sprintf("%d packages across %d steps",
		result.PackageCount(), len(result.Steps)))
	return b.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

func linkSummary(result *types.LinkResult) string {
	linked := result.Count(types.ActionLinked) +
		result.Count(types.ActionRelinked) +
		result.Count(types.ActionBackedUp)

	parts := []string{fmt.Sprintf("%d linked", linked)}
	if n := result.Count(types.ActionBackedUp); n > 0 {
		parts = append(parts, fmt.Sprintf("%d backed up", n))
	}
	if n := result.Count(types.ActionSkipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if n := result.Count(types.ActionFailed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return strings.Join(parts, ", ")
}

func pushSummary(result *secrets.PushResult) string {
	if result.DryRun {
		return fmt.Sprintf("%d kinds would be pushed", result.Count(secrets.OutcomePlanned))
	}

	parts := []string{fmt.Sprintf("%d synced", result.Count(secrets.OutcomeSynced))}
	if n := result.Count(secrets.OutcomeSkipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if n := result.Count(secrets.OutcomeFailed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return strings.Join(parts, ", ")
}

func outcomeGlyph(outcome secrets.Outcome) string {
	switch outcome {
	case secrets.OutcomeSynced:
		return SuccessIndicator
	case secrets.OutcomePlanned:
		return PendingIndicator
	case secrets.OutcomeSkipped:
		return WarningIndicator
	default:
		return ErrorIndicator
	}
}
