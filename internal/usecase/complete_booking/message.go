package complete_booking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// composeMessage собирает текст заказа для WhatsApp на малайском
// Строки выбора перечисляются в порядке каталога, а не в порядке обхода map,
// чтобы текст был детерминированным и совпадал с порядком расчета
func composeMessage(displayID string, state *domain.SelectionState, snapshot *domain.CatalogSnapshot, financials domain.Financials) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Salam BMC Canopy, saya ingin membuat tempahan (%s).\n\n", displayID)

	b.WriteString("*MAKLUMAT PELANGGAN*\n")
	fmt.Fprintf(&b, "Nama: %s\n", orDash(state.Details.FullName))
	fmt.Fprintf(&b, "No. Tel: %s\n", orDash(state.Details.Phone))
	fmt.Fprintf(&b, "Tarikh: %s\n", orDash(state.Details.EventDate))
	fmt.Fprintf(&b, "Masa: %s\n", orDash(state.Details.EventTime))
	fmt.Fprintf(&b, "Lokasi: %s\n", orDash(state.Details.Location))
	fmt.Fprintf(&b, "Tetamu: %s\n", orDash(state.Details.GuestCount))

	b.WriteString("\n*SENARAI TEMPAHAN*\n")
	if state.Mode == domain.ModePackage && state.Package != nil {
		fmt.Fprintf(&b, "- Pakej: %s\n", state.Package.Name)
	} else {
		writeCanopyLines(&b, state, snapshot)
	}
	fmt.Fprintf(&b, "- Warna Kanopi: %s\n", state.Color.Name)

	writeAccessoryLines(&b, state, snapshot)

	if state.Details.SpecialRequests != "" {
		fmt.Fprintf(&b, "\n*Catatan*: %s\n", state.Details.SpecialRequests)
	}

	b.WriteString("\n*RINGKASAN BAYARAN*\n")
	fmt.Fprintf(&b, "Jumlah Besar: RM %.2f\n", financials.GrandTotal)
	fmt.Fprintf(&b, "Deposit (50%%): RM %.2f\n", financials.Deposit)

	b.WriteString("\nMohon pengesahan ketersediaan. Terima kasih.")

	return b.String()
}

// writeCanopyLines пишет строки выбранных канопи в порядке каталога
// Записи с размером, отсутствующим в каталоге, тоже печатаются: они
// участвуют в расчете (по нулевой цене) и не должны пропадать из списка
func writeCanopyLines(b *strings.Builder, state *domain.SelectionState, snapshot *domain.CatalogSnapshot) {
	for i := range snapshot.Canopies {
		c := &snapshot.Canopies[i]

		listed := map[string]bool{}

		if !c.HasSizes() {
			if qty := state.Canopies[domain.CanopyRef{CanopyID: c.ID}]; qty > 0 {
				fmt.Fprintf(b, "- %s (x%d)\n", c.Name, qty)
			}
			listed[""] = true
		} else {
			for _, size := range c.Sizes {
				if qty := state.Canopies[domain.CanopyRef{CanopyID: c.ID, SizeName: size.Name}]; qty > 0 {
					fmt.Fprintf(b, "- %s (%s) (x%d)\n", c.Name, size.Name, qty)
				}
				listed[size.Name] = true
			}
		}

		var extra []string
		for ref, qty := range state.Canopies {
			if ref.CanopyID != c.ID || qty <= 0 || listed[ref.SizeName] {
				continue
			}
			extra = append(extra, ref.SizeName)
		}
		sort.Strings(extra)

		for _, sizeName := range extra {
			qty := state.Canopies[domain.CanopyRef{CanopyID: c.ID, SizeName: sizeName}]
			if sizeName == "" {
				fmt.Fprintf(b, "- %s (x%d)\n", c.Name, qty)
				continue
			}
			fmt.Fprintf(b, "- %s (%s) (x%d)\n", c.Name, sizeName, qty)
		}
	}
}

// writeAccessoryLines пишет блок аксессуаров, если выбран хотя бы один
func writeAccessoryLines(b *strings.Builder, state *domain.SelectionState, snapshot *domain.CatalogSnapshot) {
	var lines []string
	for i := range snapshot.Accessories {
		a := &snapshot.Accessories[i]
		if qty := state.Accessories[a.ID]; qty > 0 {
			lines = append(lines, fmt.Sprintf("- %s (x%d)", a.Name, qty))
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("\n*Tambahan (Accessories):*\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// orDash возвращает "-" для пустых полей клиента
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
