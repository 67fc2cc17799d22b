/*
Package cmdchain is a small framework for CLIs made of named commands, where each command runs a chain of handlers.

The packages in this module map to the steps of dispatching an invocation.

  - config defines option schemas, parse configuration, and help metadata, and how layers of them are merged. Layers may be loaded from YAML.
  - argparse parses arguments against a configuration with pflag.
  - cli registers commands, resolves the invoked command, validates input, and runs its handler chain.

I don't think it makes sense to accept PRs for this repo, but if someone else uses it, then I'm happy to accept issues reports or suggestions on GitHub.
*/
package cmdchain
