package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Store().Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized bevia storage at: %s\n", ctx.Repo.Store().Location())
	return nil
}
