package util

import (
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/midiwire/constants"
	"golang.org/x/exp/constraints"
)

func RecreateCaptureDir() {
	dir := constants.GetCaptureDir()
	os.RemoveAll(dir)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic("Could not RecreateCaptureDir: " + err.Error())
	}
}

func GatherAllCapturePaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".syx") || strings.HasSuffix(s, ".bin") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

// ParseHexDump decodes a loosely formatted hex dump: whitespace, commas
// and 0x prefixes are all tolerated.
func ParseHexDump(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(
		"0x", "", "0X", "",
		",", "", " ", "", "\t", "", "\r", "", "\n", "",
	).Replace(s)
	return hex.DecodeString(cleaned)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
