package projects

import "path/filepath"

// Resolve maps a project onto the inputs the classifier needs. An explicit
// metadata store override is used verbatim; otherwise the conventional .git
// subdirectory of the working path is assumed. Pure data transformation, no
// filesystem access.
func Resolve(project Project) (workPath, gitDir string) {
	if project.GitDir != "" {
		return project.Path, project.GitDir
	}

	return project.Path, filepath.Join(project.Path, ".git")
}
