package path

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 專案根目錄的絕對路徑（以此檔案位置回推兩層）；取不到時使用工作目錄
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Exists 路徑是否存在；權限等其他錯誤原樣回傳
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Resolve 相對路徑先找工作目錄，不存在再以 base 為基準；空值與絕對路徑原樣回傳
func Resolve(base, target string) string {
	if target == "" || filepath.IsAbs(target) {
		return target
	}
	if exists, _ := Exists(target); exists {
		return target
	}
	return filepath.Join(base, target)
}
