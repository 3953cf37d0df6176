package extras

// Option is a rental add-on priced per rental day. The catalog is static
// configuration: options are defined at startup and never persisted
// per-booking, only their ids are.
type Option struct {
	ID               string
	Name             string
	PricePerDayCents int64
	Description      string
}

type Catalog struct {
	options map[string]Option
	order   []string
}

func NewCatalog(options []Option) *Catalog {
	c := &Catalog{
		options: make(map[string]Option, len(options)),
		order:   make([]string, 0, len(options)),
	}
	for _, opt := range options {
		if _, exists := c.options[opt.ID]; exists {
			continue
		}
		c.options[opt.ID] = opt
		c.order = append(c.order, opt.ID)
	}
	return c
}

// DefaultCatalog mirrors the add-ons offered at the counter.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Option{
		{ID: "cdw", Name: "Potpuno kasko osiguranje", PricePerDayCents: 1500, Description: "Collision damage waiver without excess"},
		{ID: "child_seat", Name: "Dječja sjedalica", PricePerDayCents: 500, Description: "Child seat, 9-36 kg"},
		{ID: "gps", Name: "GPS navigacija", PricePerDayCents: 400, Description: "Portable satellite navigation"},
		{ID: "border_crossing", Name: "Prelazak granice", PricePerDayCents: 800, Description: "Cross-border permit and green card"},
		{ID: "additional_driver", Name: "Dodatni vozač", PricePerDayCents: 600, Description: "Second registered driver"},
	})
}

func (c *Catalog) Find(id string) (Option, bool) {
	opt, ok := c.options[id]
	return opt, ok
}

// PricePerDayCents sums the per-day price of the selected options.
// Unknown ids are skipped, not rejected: the catalog may shrink between
// a client rendering the form and submitting it.
func (c *Catalog) PricePerDayCents(selectedIDs []string) int64 {
	var total int64
	for _, id := range selectedIDs {
		if opt, ok := c.options[id]; ok {
			total += opt.PricePerDayCents
		}
	}
	return total
}

// Names resolves the selected ids to display names for confirmation
// emails, skipping unknown ids.
func (c *Catalog) Names(selectedIDs []string) []string {
	names := make([]string, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		if opt, ok := c.options[id]; ok {
			names = append(names, opt.Name)
		}
	}
	return names
}

func (c *Catalog) All() []Option {
	result := make([]Option, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.options[id])
	}
	return result
}
