package commands

import (
	"daybook.dev/daybook/pkg/app"
	"daybook.dev/daybook/pkg/store"
)

func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.NewService(p)
}
