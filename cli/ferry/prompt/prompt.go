package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/quayside/ferry/env"
)

type Prompter struct {
	Reader *bufio.Reader
}

func NewPrompter(stdin io.Reader) *Prompter {
	return &Prompter{Reader: bufio.NewReader(stdin)}
}

func (s *Prompter) Confirm(name string, value string) error {
	fmt.Fprintf(os.Stderr, "please confirm [%s]: ", name)
	if text, err := s.Reader.ReadString('\n'); err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	} else if text[:len(text)-1] != value {
		return fmt.Errorf("%s is not matched. expected: %s", name, value)
	}
	return nil
}

// ConfirmService asks the operator to type back the cluster and service
// about to be changed.
func (s *Prompter) ConfirmService(envars *env.Envars) error {
	if err := s.Confirm("cluster", envars.Cluster); err != nil {
		return err
	}
	return s.Confirm("service", envars.Service)
}
