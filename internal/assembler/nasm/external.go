// Package nasm provides helpers to reassemble generated output using nasm.
package nasm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const assemblerName = "nasm"

// AssembleUsingExternalApp calls the external assembler to generate a flat
// binary from the given asm file.
func AssembleUsingExternalApp(ctx context.Context, asmFile, outputFile string) error {
	if _, err := exec.LookPath(assemblerName); err != nil {
		return fmt.Errorf("%s is not installed", assemblerName)
	}

	cmd := exec.CommandContext(ctx, assemblerName, "-f", "bin", "-o", outputFile, asmFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
