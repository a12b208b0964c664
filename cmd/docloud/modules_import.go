package main

// Blank imports ensure module init() registration runs for the CLI binary.
import (
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/account"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/balance"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/dropletresize"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/loadbalancers"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/regions"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/sizes"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/sshkeys"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/tags"
	_ "github.com/digitalocean/ansible-collection-sub001/internal/modules/vpcs"
)
