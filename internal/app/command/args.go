package command

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

type userArgs struct {
	Username string `mapstructure:"username" validate:"required"`
}

type songArgs struct {
	ID     string `mapstructure:"id" validate:"required"`
	Title  string `mapstructure:"title" validate:"required"`
	Artist string `mapstructure:"artist"`
	Genre  string `mapstructure:"genre"`
}

type playArgs struct {
	SongID string `mapstructure:"song_id" validate:"required"`
}

// volumeArgs keeps the level as text so a blank answer fails validation
// instead of decoding to zero.
type volumeArgs struct {
	Level string `mapstructure:"level" validate:"required,number"`
}

func (a volumeArgs) level() (int, error) {
	n, err := strconv.Atoi(a.Level)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%s: level %q", Volume, a.Level)
	}
	return n, nil
}

// decodeArgs decodes command arguments into out and validates them.
// Scalars are converted weakly, so an int level arrives as a string.
func decodeArgs(validate *validator.Validate, name Name, args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(args); err != nil {
		return errors.Wrapf(ErrInvalidInput, "%s: %v", name, err)
	}
	if err := validate.Struct(out); err != nil {
		return errors.Wrapf(ErrInvalidInput, "%s: %v", name, err)
	}
	return nil
}
