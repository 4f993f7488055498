// Package inventory loads YAML inventories of transceiver ports and decodes
// their compliance codes in bulk.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInventory wraps every validation failure.
var ErrInvalidInventory = errors.New("invalid inventory")

// Inventory lists hosts and the compliance codes already read from their
// ports. Fetching the codes from devices is left to other tooling.
//
//	hosts:
//	  - name: pe1
//	    ports:
//	      - port: 1/1/c1
//	        optical_compliance: "02:0B:12:34:AB"
type Inventory struct {
	Hosts []Host `yaml:"hosts"`
}

// Host is one network element.
type Host struct {
	Name  string `yaml:"name"`
	Ports []Port `yaml:"ports"`
}

// Port is one transceiver port and its raw compliance code.
type Port struct {
	ID         string `yaml:"port"`
	Compliance string `yaml:"optical_compliance"`
}

// Load reads and validates the inventory file at path.
func Load(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	defer f.Close()

	inv, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// Parse decodes and validates an inventory document. Unknown keys are
// rejected so that typos do not silently drop ports.
func Parse(r io.Reader) (*Inventory, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var inv Inventory
	if err := dec.Decode(&inv); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidInventory)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInventory, err)
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Validate checks that hosts and ports are named and unique.
func (inv *Inventory) Validate() error {
	if len(inv.Hosts) == 0 {
		return fmt.Errorf("%w: no hosts", ErrInvalidInventory)
	}

	hosts := make(map[string]struct{}, len(inv.Hosts))
	for i, h := range inv.Hosts {
		if h.Name == "" {
			return fmt.Errorf("%w: host %d has no name", ErrInvalidInventory, i)
		}
		if _, dup := hosts[h.Name]; dup {
			return fmt.Errorf("%w: duplicate host %q", ErrInvalidInventory, h.Name)
		}
		hosts[h.Name] = struct{}{}

		ports := make(map[string]struct{}, len(h.Ports))
		for j, p := range h.Ports {
			if p.ID == "" {
				return fmt.Errorf("%w: host %q port %d has no id", ErrInvalidInventory, h.Name, j)
			}
			if _, dup := ports[p.ID]; dup {
				return fmt.Errorf("%w: host %q has duplicate port %q", ErrInvalidInventory, h.Name, p.ID)
			}
			ports[p.ID] = struct{}{}
		}
	}
	return nil
}

// PortCount returns the number of ports across all hosts.
func (inv *Inventory) PortCount() int {
	n := 0
	for _, h := range inv.Hosts {
		n += len(h.Ports)
	}
	return n
}
