// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
	xslices "golang.org/x/exp/slices"
)

type Id int

const (
	UnsupportedPlatformId Id = iota + 1
	InstallFailedId
	InstallNotImplementedId
	PermissionDeniedId
	InvalidConfigId
	VenvSetupFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return xslices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using a glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.extLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	unsupportedPlatformIssue = &Issue{
		id: UnsupportedPlatformId,
		mdMsg: `
# Unsupported operating system

swinstall only knows how to install software on Linux, Windows and macOS.

## Things you can try:
- Check what swinstall detected:
~~~
$ swinstall platforms
~~~
- Force a platform if detection is wrong:
~~~
$ swinstall install --platform Linux
~~~`,
	}

	installFailedIssue = &Issue{
		id: InstallFailedId,
		mdMsg: `
# Installation failed

The package manager command could not be run.

## Things you can try:
- Make sure the package manager is installed and on your PATH:
~~~
$ command -v apt-get
~~~
- Re-run with elevated privileges:
~~~
$ sudo swinstall install
~~~
- Preview the exact command without running it:
~~~
$ swinstall install --runner dry-run
~~~`,
		extLinks: []HttpLink{"https://manpages.debian.org/apt-get"},
	}

	installNotImplementedIssue = &Issue{
		id: InstallNotImplementedId,
		mdMsg: `
# No install action for this platform

The status lines were printed, but nothing was installed: the Windows and
macOS routines do not run a package manager yet.

## Things you can try:
- Install the software manually with your platform's package manager
- Run without ` + "`--strict`" + ` if this is expected`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied

The install command was refused by the operating system.

## Things you can try:
- Run as root or through sudo
- Check that the package manager lock is not held by another process`,
	}

	invalidConfigIssue = &Issue{
		id: InvalidConfigId,
		mdMsg: `
# Invalid configuration

A SWINSTALL_* environment variable or a flag has an invalid value.

## Things you can try:
- Show the effective configuration:
~~~
$ swinstall config show
~~~
- Unset the offending variable and retry`,
	}

	venvSetupFailedIssue = &Issue{
		id: VenvSetupFailedId,
		mdMsg: `
# Virtual environment setup failed

## Things you can try:
- Check that Python 3 is installed and ` + "`python`" + ` is on your PATH
- On Debian/Ubuntu install the venv module:
~~~
$ sudo apt-get install python3-venv
~~~`,
		extLinks: []HttpLink{"https://docs.python.org/3/library/venv.html"},
	}

	issues = map[Id]*Issue{
		unsupportedPlatformIssue.Id():   unsupportedPlatformIssue,
		installFailedIssue.Id():         installFailedIssue,
		installNotImplementedIssue.Id(): installNotImplementedIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
		invalidConfigIssue.Id():         invalidConfigIssue,
		venvSetupFailedIssue.Id():       venvSetupFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
