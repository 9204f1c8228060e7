package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// A4 portrait, in points.
const (
	pageHeight  = 842.0
	marginLeft  = 50.0
	marginTop   = 60.0
	lineHeight  = 18.0
	rowsPerPage = 28
	fontRegular = "Helvetica"
	fontBold    = "Helvetica-Bold"
)

var itemColumns = [4]float64{marginLeft, 300, 370, 460}

// PDFRenderer lays quotations out as pdfcpu JSON and lets pdfcpu produce the file.
type PDFRenderer struct {
	conf *model.Configuration
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFRenderer{conf: conf}
}

func (r *PDFRenderer) RenderQuotation(ctx context.Context, snapshot entities.QuotationSnapshot, business entities.BusinessSettings) ([]byte, error) {
	return r.render(ctx, snapshot.ID, quotationLayout(snapshot, business))
}

func (r *PDFRenderer) RenderWorkItem(ctx context.Context, item entities.WorkQueueItem, business entities.BusinessSettings) ([]byte, error) {
	return r.render(ctx, item.ID, workItemLayout(item, business))
}

func (r *PDFRenderer) render(ctx context.Context, id string, layout pdfLayout) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	spec, err := json.Marshal(layout)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(spec), &out, r.conf); err != nil {
		log.Printf("[documents][pdf] render failed id=%s err=%v", id, err)
		return nil, fmt.Errorf("render pdf %s: %w", id, err)
	}
	log.Printf("[documents][pdf] rendered id=%s pages=%d bytes=%d", id, len(layout.Pages), out.Len())
	return out.Bytes(), nil
}

type pdfLayout struct {
	Paper string             `json:"paper"`
	Pages map[string]pdfPage `json:"pages"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfContent struct {
	Text []pdfText `json:"text"`
}

type pdfText struct {
	Value string     `json:"value"`
	Pos   [2]float64 `json:"pos"`
	Font  pdfFont    `json:"font"`
}

type pdfFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// pageWriter places lines top-down and starts a new page when one fills up.
type pageWriter struct {
	layout pdfLayout
	page   int
	y      float64
}

func newPageWriter() *pageWriter {
	w := &pageWriter{layout: pdfLayout{Paper: "A4P", Pages: map[string]pdfPage{}}}
	w.newPage()
	return w
}

func (w *pageWriter) newPage() {
	w.page++
	w.y = pageHeight - marginTop
	w.layout.Pages[strconv.Itoa(w.page)] = pdfPage{}
}

func (w *pageWriter) text(x float64, value, font string, size int) {
	key := strconv.Itoa(w.page)
	p := w.layout.Pages[key]
	p.Content.Text = append(p.Content.Text, pdfText{
		Value: value,
		Pos:   [2]float64{x, w.y},
		Font:  pdfFont{Name: font, Size: size},
	})
	w.layout.Pages[key] = p
}

func (w *pageWriter) line(value, font string, size int) {
	w.text(marginLeft, value, font, size)
	w.advance(1)
}

func (w *pageWriter) advance(lines int) {
	w.y -= float64(lines) * lineHeight
}

func (w *pageWriter) header(business entities.BusinessSettings) {
	w.line(business.Name, fontBold, 18)
	for _, l := range []string{business.Address, business.Email, business.WhatsApp} {
		if l != "" {
			w.line(l, fontRegular, 10)
		}
	}
	w.advance(1)
}

func (w *pageWriter) row(cols [4]string, font string) {
	for i, c := range cols {
		w.text(itemColumns[i], c, font, 10)
	}
	w.advance(1)
}

func quotationLayout(s entities.QuotationSnapshot, business entities.BusinessSettings) pdfLayout {
	w := newPageWriter()
	w.header(business)
	w.line("Quotation "+s.ID, fontBold, 14)
	w.line("Date: "+s.CreatedAt.Format("2006-01-02"), fontRegular, 10)
	w.line("Customer: "+s.Customer.Name, fontRegular, 10)
	if s.Customer.Email != "" {
		w.line("Email: "+s.Customer.Email, fontRegular, 10)
	}
	if s.Customer.Phone != "" {
		w.line("Phone: "+s.Customer.Phone, fontRegular, 10)
	}
	w.advance(1)

	tableHeader := [4]string{"Item", "Qty", "Unit price", "Total"}
	w.row(tableHeader, fontBold)
	for i, it := range s.Items {
		if i > 0 && i%rowsPerPage == 0 {
			w.newPage()
			w.row(tableHeader, fontBold)
		}
		w.row([4]string{
			it.Name,
			strconv.Itoa(it.Quantity),
			entities.FormatAmount(it.UnitPrice),
			entities.FormatAmount(it.LineTotal),
		}, fontRegular)
	}

	w.advance(1)
	w.row([4]string{"", "", "Subtotal", entities.FormatAmount(s.Subtotal)}, fontRegular)
	w.row([4]string{"", "", "Tax (10%)", entities.FormatAmount(s.Tax)}, fontRegular)
	w.row([4]string{"", "", "Total", entities.FormatAmount(s.Total)}, fontBold)
	return w.layout
}

func workItemLayout(it entities.WorkQueueItem, business entities.BusinessSettings) pdfLayout {
	w := newPageWriter()
	w.header(business)
	w.line("Quotation "+it.ID, fontBold, 14)
	w.line("Date: "+it.Date.Format("2006-01-02"), fontRegular, 10)
	w.line("Customer: "+it.CustomerName, fontRegular, 10)
	w.line("Sent via: "+string(it.SendMethod), fontRegular, 10)
	w.line("Status: "+string(it.Status), fontRegular, 10)
	w.advance(1)
	w.line("Amount: "+entities.FormatAmount(it.Amount), fontBold, 12)
	return w.layout
}
