package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// helper functions for formatting floats and integers
func f(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
func i(i int64) string {
	return strconv.FormatInt(i, 10)
}

// confirmAction asks a yes or no question, defaulting to no
func confirmAction(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question, " [y/N] ")

	read := bufio.NewReader(in)
	response, err := read.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))

	return response == "y" || response == "yes", nil
}
