package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Link dotfiles, push secrets, set up machines"
	MsgLinkShort        = "Symlink dotfiles from the repository into place"
	MsgStatusShort      = "Show how each dotfile target currently looks"
	MsgPushSecretsShort = "Sync secret directories to a remote host"
	MsgInstallShort     = "Install the packages for a machine profile"
	MsgGenConfigShort   = "Generate a starter configuration file"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot      = "Dotfiles repository root (default: DOTFILES_ROOT, then the enclosing git checkout)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagAll       = "Link every known dotfile"
	MsgFlagLimit     = "Link only the named dotfiles"
	MsgFlagExclude   = "Leave the named dotfiles out of the selection"
	MsgFlagTarget    = "Remote host to push secrets to (default: secrets.target from the config)"
	MsgFlagDryRun    = "Report what would happen without changing anything"
	MsgFlagWrite     = "Write the starter config instead of printing it"
	MsgFlagEffective = "Print the merged configuration currently in effect"

	// Error messages
	MsgErrNoCommand       = "no command specified"
	MsgErrNothingSelected = "nothing selected: pass --all or --limit"
)

// Long messages
const (
	MsgRootLong = `outfit keeps one machine dressed like the others: it symlinks dotfiles
from a git repository into place, pushes secret directories to remote
hosts, and installs the packages a machine profile calls for. The
repository stays the single source of truth; outfit only points the
filesystem at it.`

	MsgLinkLong = `Link points each selected target path at its source file in the
repository via a symlink.

Existing symlinks at a target are replaced, whatever they point at. Real
files and directories are moved aside to <target>.backup first, where a
previous backup at that path is overwritten. Entries whose source is
missing from the repository are skipped with a warning.

Two dotfiles must never share a target: such collisions abort the run
before anything is touched. The builtin table ships both nvim flavors
pointing at the same config directory, so linking everything requires
excluding one of them.`

	MsgLinkExample = `  outfit link --all --exclude nvim-no-plugins
  outfit link --limit bashrc --limit tmux
  outfit link --limit nvim-plugins`

	MsgStatusLong = `Status reports how each target currently relates to its mapping entry:
linked, missing, stale (a symlink pointing elsewhere), conflict (a real
file in the way), or broken (linked, but the source is gone). Status
never changes anything.`

	MsgStatusExample = `  outfit status
  outfit status --limit bashrc --limit git`

	MsgPushSecretsLong = `Push-secrets syncs the local secret directories (AWS credentials, SSH
keys, GnuPG) to a remote host over rsync and then tightens their
permissions there over ssh. Kinds whose local directory is missing are
skipped; a kind that fails to sync is reported without stopping the
others.`

	MsgPushSecretsExample = `  outfit push-secrets --target me@devbox
  outfit push-secrets aws ssh --target me@devbox
  outfit push-secrets --dry-run`

	MsgInstallLong = `Install reads the package lists of a machine profile from the
repository and installs them: apt packages in one batch, brew, uv
pythons, uv tools and npm globals one by one, plus the stable Rust
toolchain. curl, sudo and brew must already be present. Unlike link,
install stops at the first failure.`

	MsgInstallExample = `  outfit install
  outfit install ubuntu-2404
  outfit install --dry-run`

	MsgGenConfigLong = `Genconfig prints a starter configuration with every value commented
out. With --write it is saved to the machine config path instead; an
existing file is never overwritten. With --effective the merged
configuration currently in effect is printed, defaults plus repo,
machine and environment overrides.`

	MsgGenConfigExample = `  outfit genconfig
  outfit genconfig --write
  outfit genconfig --effective`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(outfit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ outfit completion bash > /etc/bash_completion.d/outfit
  # macOS:
  $ outfit completion bash > /usr/local/etc/bash_completion.d/outfit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ outfit completion zsh > "${fpath[1]}/_outfit"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ outfit completion fish | source
  # To load completions for each session, execute once:
  $ outfit completion fish > ~/.config/fish/completions/outfit.fish

PowerShell:
  PS> outfit completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> outfit completion powershell > outfit.ps1
  # and source this file from your PowerShell profile.
`
)
