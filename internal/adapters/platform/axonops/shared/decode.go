package shared

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeRecord decodes one raw JSON object onto out. Fields already set on
// out act as defaults: keys that are missing or null leave them untouched.
func DecodeRecord(raw any, out any) error {
	if raw == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("building record decoder: %w", err)
	}
	return decoder.Decode(raw)
}
