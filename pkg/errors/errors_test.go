// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, classification and user messages

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_source_error",
			code:    errors.ErrInvalidSourcePath,
			message: "bad source",
			wantStr: "[INVALID_SOURCE_PATH] bad source",
		},
		{
			name:    "internal_error",
			code:    errors.ErrInternal,
			message: "something broke",
			wantStr: "[INTERNAL] something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidTargetPath, "position #%d", 3)
	assert.Equal(t, "position #3", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrMoveFailed, "failed").
		WithDetail("from", "a.txt").
		WithDetails(map[string]interface{}{"to": "b.txt"})

	assert.Equal(t, "a.txt", err.Details["from"])
	assert.Equal(t, "b.txt", err.Details["to"])
}

func TestIs(t *testing.T) {
	err1 := errors.NoFilesForPattern("*.txt")
	err2 := errors.NoFilesForPattern("*.png")
	err3 := errors.FileAlreadyExists("x")

	assert.True(t, err1.Is(err2), "same code should be equal")
	assert.False(t, err1.Is(err3), "different codes should not be equal")
	assert.True(t, stderrors.Is(err1, err2))
}

func TestTaxonomyMessages(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name     string
		err      *errors.MmvError
		code     errors.ErrorCode
		expected string
	}{
		{
			name:     "invalid_source_path",
			err:      errors.InvalidSourcePath("/"),
			code:     errors.ErrInvalidSourcePath,
			expected: "Invalid source path: /",
		},
		{
			name:     "invalid_target_path",
			err:      errors.InvalidTargetPath("position #2 does not exist in source path"),
			code:     errors.ErrInvalidTargetPath,
			expected: "Invalid target path: position #2 does not exist in source path",
		},
		{
			name:     "directory_not_found",
			err:      errors.DirectoryNotFound("some_dir", cause),
			code:     errors.ErrDirectoryNotFound,
			expected: "Directory `some_dir` not found",
		},
		{
			name:     "permission_denied",
			err:      errors.PermissionDenied(cause),
			code:     errors.ErrPermissionDenied,
			expected: "Permission denied: boom",
		},
		{
			name:     "no_files_for_pattern",
			err:      errors.NoFilesForPattern("file-*.txt"),
			code:     errors.ErrNoFilesForPattern,
			expected: "Files for pattern 'file-*.txt' not found",
		},
		{
			name:     "file_already_exists",
			err:      errors.FileAlreadyExists("dir/file.txt"),
			code:     errors.ErrFileAlreadyExists,
			expected: "Not able to replace existing file: dir/file.txt",
		},
		{
			name:     "move_failed",
			err:      errors.MoveFailed("dir/a.txt", cause),
			code:     errors.ErrMoveFailed,
			expected: "Failed move: dir/a.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.expected, errors.UserMessage(tt.err))
		})
	}
}

func TestFromIO(t *testing.T) {
	t.Run("permission_errors_are_classified", func(t *testing.T) {
		raw := &fs.PathError{Op: "rename", Path: "a", Err: fs.ErrPermission}
		err := errors.FromIO(raw)
		require.NotNil(t, err)
		assert.Equal(t, errors.ErrPermissionDenied, err.Code)
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})

	t.Run("other_errors_are_generic", func(t *testing.T) {
		raw := stderrors.New("disk on fire")
		err := errors.FromIO(raw)
		require.NotNil(t, err)
		assert.Equal(t, errors.ErrIO, err.Code)
		assert.Equal(t, "disk on fire", errors.UserMessage(err))
	})

	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.FromIO(nil))
	})
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", errors.UserMessage(nil))
	assert.Equal(t, "plain", errors.UserMessage(stderrors.New("plain")))

	wrapped := fmt.Errorf("context: %w", errors.NoFilesForPattern("*.md"))
	assert.Equal(t, "Files for pattern '*.md' not found", errors.UserMessage(wrapped))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.FileAlreadyExists("f"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAlreadyExists))
	assert.False(t, errors.IsErrorCode(err, errors.ErrMoveFailed))
	assert.Equal(t, errors.ErrFileAlreadyExists, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("x")))
	assert.Equal(t, "f", errors.GetErrorDetails(err)["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("x")))
}
