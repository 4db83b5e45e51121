package packaging

import (
	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"gopkg.in/yaml.v3"
)

// PackageSpecFile is the package build recipe written by the scaffold.
const PackageSpecFile = "package.yml"

// PackageSpec holds the package.yml fields soltools reports on.
type PackageSpec struct {
	Name        string              `yaml:"name" json:"name"`
	Version     string              `yaml:"version" json:"version"`
	Release     int                 `yaml:"release" json:"release"`
	Source      []map[string]string `yaml:"source" json:"source"`
	License     stringList          `yaml:"license" json:"license"`
	Component   stringList          `yaml:"component" json:"component"`
	Homepage    string              `yaml:"homepage" json:"homepage"`
	Summary     string              `yaml:"summary" json:"summary"`
	Description string              `yaml:"description" json:"description"`
}

// SourceURLs returns the upstream URLs in declaration order.
func (p *PackageSpec) SourceURLs() []string {
	var urls []string
	for _, src := range p.Source {
		for url := range src {
			urls = append(urls, url)
		}
	}
	return urls
}

// stringList accepts either a scalar or a sequence.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = stringList{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

// ReadPackageSpec parses the package.yml at path.
func ReadPackageSpec(fsys filesystem.FS, path string) (*PackageSpec, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).WithDetail("path", path)
	}

	var spec PackageSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "malformed %s", path).WithDetail("path", path)
	}
	return &spec, nil
}
