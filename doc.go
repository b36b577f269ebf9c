/*
Package arbor is the execution core of a behavior-tree control runtime: the per-node contract every composite, decorator and leaf builds on.

A node is ticked repeatedly by an external driver and reports one of four statuses (Idle, Running, Success, Failure). Nodes exchange data through named ports resolved against a shared blackboard, and other goroutines may observe a node's status, subscribe to its transitions, or block until it leaves Idle, all while the driver keeps ticking.

# Concept

Arbor deliberately stops below tree topology. It defines what a single node is (identity, configuration, status lifecycle, ports, notifications) and leaves how nodes are arranged and how children's statuses combine to the layers above. This Hexagonal Architecture keeps the core embeddable: the blackboard is an interface with in-memory and Redis adapters, observers are plain subscribers, and the driver loop is a separate package.

# Key Features

  - Guarded status lifecycle: transitions are published exactly once, notify subscribers in order, and wake blocked waiters.
  - Typed ports: a remapping table resolves each port to an inline literal or a blackboard key, with on-demand string conversion.
  - Scoped subscriptions: releasing a subscription synchronizes with in-flight delivery.
  - Pluggable data plane: one blackboard instance is shared by every node of a tree.

# Usage

Wrap your logic in a leaf node, give it a blackboard and a port remapping, and drive it:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/adapters/memory"
		"github.com/aretw0/arbor/pkg/core"
		"github.com/aretw0/arbor/pkg/runner"
	)

	func main() {
		bb := memory.NewBlackboard()

		cfg := core.Config{
			Blackboard: bb,
			Remapping: map[string]string{
				"limit":  "'3'", // inline literal
				"result": "out", // blackboard key
			},
		}

		count := 0
		var node *core.TreeNode
		node = arbor.NewAction("counter", cfg, func() (arbor.Status, error) {
			limit, err := core.GetInput[int](node, "limit")
			if err != nil {
				return arbor.StatusFailure, nil
			}
			count++
			if count < limit {
				return arbor.StatusRunning, nil
			}
			_ = core.SetOutput(node, "result", count)
			return arbor.StatusSuccess, nil
		})

		status, err := runner.NewRunner().Run(context.Background(), node)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("finished with", status)
	}
*/
package arbor
