package packaging

import (
	"strings"
	"text/template"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/vcs"
)

// MaintainersFile is written into a package directory when the packager
// claims maintainership.
const MaintainersFile = "MAINTAINERS.md"

// Maintainer identifies one package maintainer.
type Maintainer struct {
	Name   string
	Email  string
	Matrix string
}

const maintainersPreamble = "This file is used to indicate primary maintainership for this package. " +
	"A package may list more than one maintainer to avoid bus factor issues. " +
	"People on this list may be considered “subject-matter experts”. " +
	"Please note that Solus staff may need to perform necessary rebuilds, upgrades, or security fixes " +
	"as part of the normal maintenance of the Solus package repository. " +
	"If you believe this package requires an update, follow documentation from " +
	"https://help.getsol.us/docs/packaging/procedures/request-a-package-update. " +
	"In the event that this package becomes insufficiently maintained, the Solus staff reserves the right " +
	"to request a new maintainer, or deprecate and remove this package from the repository entirely."

var maintainersTemplate = template.Must(template.New("maintainers").Parse(`{{ .Preamble }}
{{ range .Maintainers }}
- {{ .Name }}
{{- if .Matrix }}
  - Matrix: {{ .Matrix }}
{{- end }}
  - Email: {{ .Email }}
{{ end -}}
`))

// RenderMaintainers renders the MAINTAINERS.md content.
func RenderMaintainers(maintainers ...Maintainer) (string, error) {
	if len(maintainers) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "at least one maintainer is required")
	}

	var b strings.Builder
	err := maintainersTemplate.Execute(&b, struct {
		Preamble    string
		Maintainers []Maintainer
	}{maintainersPreamble, maintainers})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to render maintainers file")
	}
	return b.String(), nil
}

// ResolveMaintainer fills in the name and email missing from configured
// using the global git identity. It fails when either is still missing.
func ResolveMaintainer(configured Maintainer, lookup func() (vcs.Identity, error)) (Maintainer, error) {
	m := configured
	if !identityOf(m).Complete() && lookup != nil {
		id, err := lookup()
		if err == nil {
			if m.Name == "" {
				m.Name = id.Name
			}
			if m.Email == "" {
				m.Email = id.Email
			}
		}
	}

	if !identityOf(m).Complete() {
		return Maintainer{}, errors.New(errors.ErrPrecondition,
			"no maintainer identity: set maintainer.name and maintainer.email or configure git user.name and user.email")
	}
	return m, nil
}

func identityOf(m Maintainer) vcs.Identity {
	return vcs.Identity{Name: m.Name, Email: m.Email}
}
