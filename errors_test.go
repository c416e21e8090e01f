package shaderc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{initError("create compiler"), "[create compiler] initialization: native library returned a null handle"},
		{releasedError("compile"), "[compile] released: compiler has been released"},
		{invalidInput("compile", "source is empty"), "[compile] invalid_input: source is empty"},
		{configError("shader kind", "vertx"), `[config] config: unknown shader kind "vertx"`},
		{
			&Error{Op: "compile", Kind: KindCompilation, Status: StatusInvalidStage, Detail: "no #pragma"},
			"[compile] compilation (invalid stage): no #pragma",
		},
		{
			wrapConfig("decode toml options", errors.New("line 3")),
			"[config] config: decode toml options (caused by: line 3)",
		},
		{&Error{Kind: KindReleased}, "released"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("building shaders: %w", releasedError("compile"))
	assert.ErrorIs(t, err, ErrReleased)
	assert.NotErrorIs(t, err, ErrInitialization)

	cause := errors.New("unexpected EOF")
	werr := wrapConfig("decode yaml options", cause)
	assert.ErrorIs(t, werr, ErrConfig)
	assert.ErrorIs(t, werr, cause)

	comp := &Error{Kind: KindCompilation, Status: StatusValidationError}
	assert.ErrorIs(t, comp, StatusValidationError)
	assert.NotErrorIs(t, comp, StatusCompilationError)

	// A status only matches compilation errors.
	assert.NotErrorIs(t, invalidInput("compile", "x"), StatusSuccess)
}
