package vkboot

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ShaderSource supplies compiled SPIR-V bytecode by logical stage name.
// The bootstrap never interprets the contents beyond word alignment.
type ShaderSource interface {
	Load(name string) ([]byte, error)
}

// DirSource loads "<name>.spv" files from a directory at runtime.
type DirSource struct {
	Dir string
}

func (s DirSource) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, name+".spv"))
}

// Logical stage names the pipeline assembler asks a ShaderSource for.
const (
	VertexShaderName   = "triangle.vert"
	FragmentShaderName = "triangle.frag"
)

// shaderWords repacks SPIR-V bytes into the 32-bit words the driver
// expects. The format requires whole little-endian words; anything else is
// rejected up front rather than handed to the driver.
func shaderWords(code []byte) ([]uint32, error) {
	if len(code) == 0 {
		return nil, errors.Wrap(ErrShaderModuleInvalid, "empty bytecode")
	}
	if len(code)%4 != 0 {
		return nil, errors.Wrapf(ErrShaderModuleInvalid, "bytecode length %d is not a whole number of words", len(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words, nil
}
