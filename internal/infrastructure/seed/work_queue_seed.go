package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed work_queue.yaml
var defaultWorkQueue []byte

var ErrInvalidSeed = errors.New("invalid work queue seed")

const seedDateLayout = "2006-01-02"

type workQueueFile struct {
	Items []workQueueRecord `yaml:"items"`
}

type workQueueRecord struct {
	ID           string `yaml:"id"`
	CustomerName string `yaml:"customer_name"`
	Amount       string `yaml:"amount"`
	Status       string `yaml:"status"`
	SendMethod   string `yaml:"send_method"`
	Date         string `yaml:"date"`
}

// LoadWorkQueue reads the seed at path, or the bundled one when path is empty.
func LoadWorkQueue(path string) ([]entities.WorkQueueItem, error) {
	if path == "" {
		return ParseWorkQueue(bytes.NewReader(defaultWorkQueue))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWorkQueue(f)
}

func ParseWorkQueue(r io.Reader) ([]entities.WorkQueueItem, error) {
	var file workQueueFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	items := make([]entities.WorkQueueItem, 0, len(file.Items))
	for i, rec := range file.Items {
		it, err := rec.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidSeed, i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (r workQueueRecord) toEntity() (entities.WorkQueueItem, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return entities.WorkQueueItem{}, errors.New("missing id")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return entities.WorkQueueItem{}, fmt.Errorf("amount %q", r.Amount)
	}
	status, err := entities.ParseWorkQueueStatus(r.Status)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	method, err := entities.ParseSendMethod(r.SendMethod)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	date, err := time.Parse(seedDateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return entities.WorkQueueItem{}, fmt.Errorf("date %q", r.Date)
	}
	return entities.WorkQueueItem{
		ID:           id,
		CustomerName: strings.TrimSpace(r.CustomerName),
		Amount:       amount,
		SendMethod:   method,
		Status:       status,
		Date:         date,
	}, nil
}
