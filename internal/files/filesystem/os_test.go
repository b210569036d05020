package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	absDir, _ = filepath.EvalSymlinks(absDir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Walk_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	if err := os.MkdirAll(filepath.Join(target, "com", "example"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "com", "example", "lib.pom"), []byte("pom"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(t.TempDir(), "repo")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	d, err := NewOSFileSystem().Open(link)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", link, err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, filepath.ToSlash(f.RelativePath()))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(files) != 1 || files[0] != "com/example/lib.pom" {
		t.Errorf("Walk() through symlinked root found %v, want [com/example/lib.pom]", files)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_OpenFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "lib.jar")
	os.WriteFile(filePath, []byte("jar"), 0644)

	rc, err := NewOSFileSystem().OpenFile(filePath)
	if err != nil {
		t.Fatalf("OpenFile error = %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "jar" {
		t.Errorf("content = %q, want %q", data, "jar")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	_, err := NewOSFileSystem().Stat(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadDir_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.pom", "a.jar", "b.jar"} {
		os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
	}

	infos, err := NewOSFileSystem().ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	if !sort.StringsAreSorted(names) || len(names) != 3 {
		t.Errorf("ReadDir names = %v, want 3 sorted names", names)
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "com", "example", "lib", "1.0"), 0755)
	os.WriteFile(filepath.Join(dir, "com", "example", "lib", "1.0", "lib-1.0.pom"), []byte("pom"), 0644)

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}

	var files []string
	err = d.Walk(func(file File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() {
			files = append(files, filepath.ToSlash(file.RelativePath()))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error = %v", err)
	}
	if len(files) != 1 || files[0] != "com/example/lib/1.0/lib-1.0.pom" {
		t.Errorf("Walk files = %v", files)
	}
}
