package vcardio

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
)

// Export writes every record of the address book as a vCard 4.0 card.
func Export(w io.Writer, ab *book.AddressBook) error {
	encoder := vcard.NewEncoder(w)

	for _, r := range ab.Records() {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, r.Name().String())

		for _, p := range r.Phones() {
			card.Add(config.VCardTEL, &vcard.Field{Value: p.String()})
		}

		if b := r.Birthday(); b != nil {
			card.SetValue(config.VCardBDAY, b.Date().Format(config.DateFormatFullBasic))
		}

		vcard.ToV4(card)
		if err := encoder.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompVCard,
		config.LogKeyCount, ab.Len(),
	)
	return nil
}
