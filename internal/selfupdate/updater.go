package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// devVersion is what a binary built outside the release pipeline reports.
const devVersion = "(devel)"

// Stage names a step of Update, reported through UpdateProgress.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion pins a release tag. Empty means the latest.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// releaseFiles locates the files of one tagged release.
type releaseFiles struct {
	base    string
	tag     string
	archive string
}

func (r releaseFiles) url(name string) string {
	return r.base + "/" + path.Join("releases", "download", r.tag, name)
}

// Update replaces the running executable with the release archive for
// this platform, after checking it against the release's checksums.txt.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == devVersion {
		return ErrDevBuild
	}
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
		}
	}

	tag, err := c.resolveTag(ctx, input, report)
	if err != nil {
		return err
	}
	archive, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	rel := releaseFiles{
		base:    fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo),
		tag:     tag,
		archive: archive,
	}

	report(StageDownload, "Downloading %s...", tag)
	var buf bytes.Buffer
	sum := sha256.New()
	if err := c.fetch(ctx, rel.url(rel.archive), io.MultiWriter(&buf, sum)); err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	var sums bytes.Buffer
	if err := c.fetch(ctx, rel.url("checksums.txt"), &sums); err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums.Bytes())[rel.archive]
	if !ok {
		return fmt.Errorf("%w: %s is not listed in checksums.txt", ErrChecksum, rel.archive)
	}
	if got := hex.EncodeToString(sum.Sum(nil)); !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: %s has sha256 %s, want %s", ErrChecksum, rel.archive, got, want)
	}

	report(StageExtract, "Extracting %s...", binaryName)
	bin, err := extractBinary(buf.Bytes(), rel.archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Replacing the installed binary...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	if err := replaceExecutable(target, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, report func(Stage, string, ...any)) (string, error) {
	if input.TargetVersion != "" {
		if !semver.IsValid(canonical(input.TargetVersion)) {
			return "", fmt.Errorf("invalid target version %q", input.TargetVersion)
		}
		return input.TargetVersion, nil
	}

	report(StageCheck, "Checking for the latest release...")
	res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !res.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return res.LatestVersion, nil
}

// releaseArch maps GOARCH to the architecture names used in archive names.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// assetNameFor returns the release archive for a platform. macOS ships a
// single universal archive.
func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}

	var osName, ext string
	switch goos {
	case "linux":
		osName, ext = "Linux", ".tar.gz"
	case "windows":
		osName, ext = "Windows", ".zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	return fmt.Sprintf("%s_%s_%s%s", binaryName, osName, arch, ext), nil
}

func (c *Checker) fetch(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// parseChecksums reads "<sha256>  <file>" lines as written by sha256sum.
// Lines of any other shape are ignored.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 {
			sums[strings.TrimPrefix(fields[1], "*")] = fields[0]
		}
	}
	return sums
}

// extractBinary pulls the executable out of a release archive.
func extractBinary(archive []byte, name string) ([]byte, error) {
	if strings.HasSuffix(name, ".zip") {
		return fromZip(archive, binaryName+".exe")
	}
	return fromTarGz(archive, binaryName)
}

func fromTarGz(data []byte, want string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s not found in archive", want)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == want {
			return io.ReadAll(tr)
		}
	}
}

func fromZip(data []byte, want string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != want {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", want)
}

// replaceExecutable writes bin next to target and renames it into place,
// keeping target's file mode. The rename is atomic on the same filesystem.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}

	// The staged file must hold exactly what was verified.
	written, err := os.ReadFile(tmpName)
	if err != nil {
		return err
	}
	if sha256.Sum256(written) != sha256.Sum256(bin) {
		return fmt.Errorf("%w: staged binary differs from the download", ErrChecksum)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}
	committed = true
	return nil
}
