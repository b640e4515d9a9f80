package files

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// hashPrefixLength is the number of leading bytes hashed to fingerprint a file
const hashPrefixLength = 15000

//IndexFile opens up the file path and parses out some metadata
func IndexFile(filePath string) (*IndexedFile, error) {
	toReturn := new(IndexedFile)
	toReturn.Path = filePath

	fileHandle, err := os.Open(filePath)
	if err != nil {
		return toReturn, err
	}
	defer fileHandle.Close()

	fInfo, err := fileHandle.Stat()
	if err != nil {
		return toReturn, err
	}
	if fInfo.IsDir() {
		return toReturn, fmt.Errorf("%s is a directory", filePath)
	}
	toReturn.Length = fInfo.Size()
	toReturn.ModTime = fInfo.ModTime()

	fHash, err := getFileHash(fileHandle, fInfo)
	if err != nil {
		return toReturn, err
	}
	toReturn.Hash = fHash

	return toReturn, nil
}

//getFileHash md5's the first 15000 bytes of a file
func getFileHash(fileHandle *os.File, fInfo os.FileInfo) (string, error) {
	hash := md5.New()

	if fInfo.Size() >= hashPrefixLength {
		if _, err := io.CopyN(hash, fileHandle, hashPrefixLength); err != nil {
			return "", err
		}
	} else {
		if _, err := io.Copy(hash, fileHandle); err != nil {
			return "", err
		}
	}
	//be nice and reset the file handle
	if _, err := fileHandle.Seek(0, 0); err != nil {
		return "", err
	}
	var byteset []byte
	return fmt.Sprintf("%x", hash.Sum(byteset)), nil
}
