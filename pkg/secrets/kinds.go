// Package secrets pushes credential directories (AWS, SSH, GPG) to a
// remote machine over rsync and tightens their permissions over ssh.
// Secrets never pass through the dotfiles repository itself.
package secrets

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// Kind identifies one category of secrets outfit knows how to push.
type Kind string

const (
	KindAWS Kind = "aws"
	KindSSH Kind = "ssh"
	KindGPG Kind = "gpg"
)

// Config describes where one kind of secrets lives locally and how the
// remote copy is locked down after syncing.
type Config struct {
	Kind Kind

	// Source is the local directory holding the secrets.
	Source string

	// Remote is the destination directory on the target machine. It stays
	// in ~-relative form so the remote shell expands it.
	Remote string

	// Permissions is the shell command run on the target after a sync.
	Permissions string
}

// AllKinds returns every known kind, in the order pushes process them.
func AllKinds() []Kind {
	return []Kind{KindAWS, KindSSH, KindGPG}
}

// Catalog returns the push configuration for every kind, with local
// source directories resolved against the given home directory.
func Catalog(home string) map[Kind]Config {
	return map[Kind]Config{
		KindAWS: {
			Kind:        KindAWS,
			Source:      filepath.Join(home, ".aws"),
			Remote:      "~/.aws",
			Permissions: "chmod 600 ~/.aws/*",
		},
		KindSSH: {
			Kind:        KindSSH,
			Source:      filepath.Join(home, ".ssh"),
			Remote:      "~/.ssh",
			Permissions: "chmod 600 ~/.ssh/id_* && chmod 644 ~/.ssh/*.pub && chmod 600 ~/.ssh/known_hosts",
		},
		KindGPG: {
			Kind:        KindGPG,
			Source:      filepath.Join(home, ".gnupg"),
			Remote:      "~/.gnupg",
			Permissions: "chmod 700 ~/.gnupg && chmod 600 ~/.gnupg/*",
		},
	}
}

// ParseKinds converts raw --limit values into kinds. Unlike dotfile
// selection, an unknown secret kind is an error, and every unknown name
// is reported at once.
func ParseKinds(names []string) ([]Kind, error) {
	valid := make(map[Kind]bool)
	validNames := make([]string, 0, len(AllKinds()))
	for _, k := range AllKinds() {
		valid[k] = true
		validNames = append(validNames, string(k))
	}
	sort.Strings(validNames)

	var kinds []Kind
	var invalid []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if valid[Kind(name)] {
			kinds = append(kinds, Kind(name))
			continue
		}
		if !seen[name] {
			seen[name] = true
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		return nil, errors.Newf(errors.ErrSecretUnknown,
			"invalid secret types: %s (valid types are: %s)",
			strings.Join(invalid, ", "), strings.Join(validNames, ", "))
	}
	return kinds, nil
}
