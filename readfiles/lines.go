package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
The line readers below abort a parse by panicking with a parseError, which
the exported readers recover into an ordinary error. Any other panic is not
ours and is passed on.
*/
type parseError struct {
	err error
}

func fail(err error) {
	panic(parseError{err: err})
}

func failf(format string, args ...interface{}) {
	fail(errors.Newf(format, args...))
}

func catch(errp *error) {
	if r := recover(); r != nil {
		pe, ok := r.(parseError)
		if !ok {
			panic(r)
		}
		*errp = pe.err
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			fail(errors.Wrap(err, "read line"))
		}
		if len(line) == 0 {
			fail(errors.New("early end of file"))
		}
	}
	line = strings.TrimRight(line, "\r\n") // Strip away the newline
	return
}

func skipLines(n int, reader *bufio.Reader) {
	for i := 0; i < n; i++ {
		getLine(reader)
	}
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.TrimSpace(getLine(reader))
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

// getToken returns what follows the = of a NAME= value line
func getToken(reader *bufio.Reader) (name, token string) {
	line := getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		failf("badly formed input line [%s], should have an =", line)
	}
	name, token = strings.TrimSpace(line[:ind]), line[ind+1:]
	return
}

func expectToken(reader *bufio.Reader, want string) (token string) {
	var name string
	if name, token = getToken(reader); name != want {
		failf("expected %s=, have [%s=%s]", want, name, token)
	}
	return
}

func readLabel(reader *bufio.Reader, want string) (label string) {
	token := expectToken(reader, want)
	if _, err := fmt.Sscanf(token, "%s", &label); err != nil {
		failf("unable to read label from token: [%s]", token)
	}
	label = strings.TrimSpace(label)
	return
}

func readNumber(reader *bufio.Reader, want string) (num int) {
	token := expectToken(reader, want)
	if _, err := fmt.Sscanf(token, "%d", &num); err != nil {
		failf("unable to read number from token: [%s]", token)
	}
	if num < 0 {
		failf("negative count %d for %s", num, want)
	}
	return
}
