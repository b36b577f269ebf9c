package registry_test

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
)

func sayBuilder(name string, cfg core.Config) (core.Node, error) {
	return core.NewTreeNode(name, domain.NodeTypeAction, cfg,
		func() (domain.NodeStatus, error) {
			return domain.StatusSuccess, nil
		}), nil
}

func TestRegistry_BuildStampsRegistrationID(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(domain.Manifest{
		Type:           domain.NodeTypeAction,
		RegistrationID: "Say",
		Ports:          domain.PortsList{"message"},
	}, sayBuilder)

	node, err := r.Build("Say", "greeter", core.Config{
		Blackboard: memory.NewBlackboard(),
		Remapping:  map[string]string{"message": "'hi'"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if node.Name() != "greeter" {
		t.Errorf("name %q, want greeter", node.Name())
	}
	tn, ok := node.(*core.TreeNode)
	if !ok {
		t.Fatalf("expected *core.TreeNode, got %T", node)
	}
	if tn.RegistrationID() != "Say" {
		t.Errorf("registration id %q, want Say", tn.RegistrationID())
	}
}

func TestRegistry_BuildUnknownType(t *testing.T) {
	r := registry.NewRegistry()
	_, err := r.Build("Missing", "x", core.Config{})
	if err == nil {
		t.Fatal("expected error for unregistered type, got nil")
	}
	if !strings.Contains(err.Error(), "not registered") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegistry_ManifestsSorted(t *testing.T) {
	r := registry.NewRegistry()
	for _, id := range []string{"Zeta", "Alpha", "Mid"} {
		r.Register(domain.Manifest{RegistrationID: id}, sayBuilder)
	}

	manifests := r.Manifests()
	if len(manifests) != 3 {
		t.Fatalf("expected 3 manifests, got %d", len(manifests))
	}
	if manifests[0].RegistrationID != "Alpha" || manifests[2].RegistrationID != "Zeta" {
		t.Errorf("not sorted: %v", manifests)
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(domain.Manifest{RegistrationID: "Say", Ports: domain.PortsList{"old"}}, sayBuilder)
	r.Register(domain.Manifest{RegistrationID: "Say", Ports: domain.PortsList{"new"}}, sayBuilder)

	m, ok := r.Manifest("Say")
	if !ok {
		t.Fatal("manifest missing")
	}
	if !m.Ports.Has("new") || m.Ports.Has("old") {
		t.Errorf("overwrite did not take: %v", m.Ports)
	}
}

func TestRegistry_WriteManifests(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(domain.Manifest{
		Type:           domain.NodeTypeCondition,
		RegistrationID: "IsDoorOpen",
		Ports:          domain.PortsList{"door"},
	}, sayBuilder)

	var buf bytes.Buffer
	if err := r.WriteManifests(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []domain.Manifest
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("emitted YAML does not parse: %v", err)
	}
	if len(decoded) != 1 || decoded[0].RegistrationID != "IsDoorOpen" {
		t.Errorf("roundtrip got %v", decoded)
	}
	if decoded[0].Type != domain.NodeTypeCondition {
		t.Errorf("type %q lost in export", decoded[0].Type)
	}
}
