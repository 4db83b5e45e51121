package style

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/packaging"
	"github.com/EbonJaeger/soltools/pkg/repo"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Renderer prints command results in one Format.
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer resolves FormatAuto against out. Writers that are not files
// get plain text.
func NewRenderer(out io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Renderer{out: out, format: format}
}

func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if r.format != FormatTerminal {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) line(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) dryRunNotice() {
	r.line("\n%s", r.paint(WarningStyle, MsgDryRunNotice))
}

func (r *Renderer) indexed() {
	r.line("%s %s", r.paint(SuccessStyle, SuccessMark), "Repository indexed")
}

// Clean prints the packages removed by a clean run.
func (r *Renderer) Clean(res *repo.CleanResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	if len(res.Removed) == 0 {
		r.line("%s", r.paint(MutedStyle, "No packages to remove."))
	}
	for _, p := range res.Removed {
		mark, verb := r.paint(ErrorStyle, RemoveMark), "removed"
		if res.DryRun {
			mark, verb = r.paint(MutedStyle, PendingMark), "would remove"
		}
		r.line("  %s %s %s", mark, verb, r.paint(PackageStyle, filepath.Base(p)))
	}
	if res.Indexed {
		r.indexed()
	}
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// Copy prints the packages copied into the repository.
func (r *Renderer) Copy(res *repo.CopyResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	if len(res.Copied) == 0 {
		r.line("%s", r.paint(MutedStyle, "No package files found."))
	}
	for _, p := range res.Copied {
		mark, verb := r.paint(SuccessStyle, SuccessMark), "copied"
		if res.DryRun {
			mark, verb = r.paint(MutedStyle, PendingMark), "would copy"
		}
		r.line("  %s %s %s to %s", mark, verb,
			r.paint(PackageStyle, filepath.Base(p)), r.paint(PathStyle, filepath.Dir(p)))
	}
	if res.Indexed {
		r.indexed()
	}
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// Index prints the outcome of an index run.
func (r *Renderer) Index(path string, entries []repo.IndexEntry, dryRun bool) error {
	if r.format == FormatJSON {
		return r.json(struct {
			Path    string            `json:"path"`
			Entries []repo.IndexEntry `json:"entries"`
			DryRun  bool              `json:"dry_run"`
		}{path, entries, dryRun})
	}
	if dryRun {
		r.line("  %s would index %s", r.paint(MutedStyle, PendingMark), r.paint(PathStyle, path))
		r.dryRunNotice()
		return nil
	}
	r.line("%s Indexed %s (%d packages)", r.paint(SuccessStyle, SuccessMark),
		r.paint(PathStyle, path), len(entries))
	return nil
}

// Clone prints where a package was cloned.
func (r *Renderer) Clone(res *packaging.CloneResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	if res.DryRun {
		r.line("  %s would clone %s into %s", r.paint(MutedStyle, PendingMark),
			r.paint(PathStyle, res.URL), r.paint(PathStyle, res.Path))
		r.dryRunNotice()
		return nil
	}
	r.line("%s Cloned %s into %s", r.paint(SuccessStyle, SuccessMark),
		r.paint(PackageStyle, res.Name), r.paint(PathStyle, res.Path))
	return nil
}

// Init prints the files of a new package directory.
func (r *Renderer) Init(res *packaging.InitResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	verb := "Created"
	if res.DryRun {
		verb = "Would create"
	}
	r.line("%s %s", verb, r.paint(PathStyle, res.Path))
	for _, f := range res.Files {
		r.line("  %s %s", r.paint(MutedStyle, "-"), filepath.Base(f))
	}
	if spec := res.Spec; spec != nil {
		r.line("%s %s %s-%d", r.paint(SuccessStyle, SuccessMark),
			r.paint(PackageStyle, spec.Name), r.paint(VersionStyle, spec.Version), spec.Release)
	}
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// Listing prints the repository contents.
func (r *Renderer) Listing(l *repo.Listing) error {
	switch r.format {
	case FormatJSON:
		return r.json(l)
	case FormatTerminal:
		return r.listingTable(l)
	}

	for _, f := range l.Files {
		state := "indexed"
		if !f.Indexed {
			state = "not indexed"
		}
		r.line("%s\t%s\t%s", f.Name, humanize.Bytes(uint64(f.Size)), state)
	}
	for _, e := range l.Stale() {
		r.line("%s\tmissing\tindexed", e.FileName())
	}
	return nil
}

func (r *Renderer) listingTable(l *repo.Listing) error {
	if len(l.Files) == 0 && len(l.Index) == 0 {
		r.line("%s", r.paint(MutedStyle, fmt.Sprintf("No packages in %s", l.Path)))
		return nil
	}

	data := pterm.TableData{{"Package", "Size", "Index"}}
	for _, f := range l.Files {
		state := r.paint(SuccessStyle, SuccessMark)
		if !f.Indexed {
			state = r.paint(WarningStyle, WarningMark)
		}
		data = append(data, []string{r.paint(PackageStyle, f.Name), humanize.Bytes(uint64(f.Size)), state})
	}
	for _, e := range l.Stale() {
		data = append(data, []string{r.paint(MutedStyle, e.FileName()), "missing", r.paint(ErrorStyle, RemoveMark)})
	}

	r.line("%s", r.paint(TitleStyle, l.Path))
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(r.out).Render()
}

// Error formats err for standard error, followed by its error code when
// it has one.
func (r *Renderer) Error(err error) string {
	if err == nil {
		return ""
	}
	if r.format == FormatJSON {
		doc := map[string]interface{}{
			"error": err.Error(),
			"code":  errors.GetErrorCode(err),
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			doc["details"] = details
		}
		data, _ := json.Marshal(doc)
		return string(data)
	}

	var b strings.Builder
	b.WriteString(r.paint(ErrorStyle, "Error: "+err.Error()))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		b.WriteString(r.paint(MutedStyle, fmt.Sprintf(" [%s]", code)))
	}
	return b.String()
}

// MsgDryRunNotice closes the output of every dry run.
const MsgDryRunNotice = "DRY RUN - no changes were made"
