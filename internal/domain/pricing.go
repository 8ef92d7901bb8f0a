package domain

// Financials финансовая разбивка заказа
// Значения не округляются; форматирование до двух знаков — только при выводе
type Financials struct {
	Subtotal    float64
	SST         float64
	DeliveryFee float64
	GrandTotal  float64
	Deposit     float64
}

// CalculateFinancials рассчитывает стоимость по состоянию выбора и каталогу
// Чистая функция: одинаковые входы дают одинаковый результат
//
// Правила:
//   - Ala Carte: строки канопи с qty > 0; канопи ищется по id (не нашлась —
//     строка пропускается); при наличии имени размера у канопи с размерами
//     цена берется из размера (не нашелся — цена 0, деградация без ошибки),
//     иначе базовая цена канопи;
//   - Package: плоская цена выбранного пакета, количество всегда 1;
//   - аксессуары суммируются в обоих режимах, нулевые количества дают 0;
//   - SST 6% от подытога, доставка фиксированная, депозит 50% от итога.
func CalculateFinancials(state *SelectionState, snapshot *CatalogSnapshot) Financials {
	subtotal := 0.0

	if state.Mode == ModeAlaCarte {
		for ref, qty := range state.Canopies {
			if qty <= 0 {
				continue
			}

			canopy, ok := snapshot.CanopyByID(ref.CanopyID)
			if !ok {
				continue
			}

			var unitPrice float64
			if ref.SizeName != "" && canopy.HasSizes() {
				if size, ok := canopy.SizeByName(ref.SizeName); ok {
					unitPrice = size.Price
				}
			} else {
				unitPrice = canopy.Price
			}

			subtotal += unitPrice * float64(qty)
		}
	}

	if state.Mode == ModePackage && state.Package != nil {
		subtotal += state.Package.Price
	}

	for id, qty := range state.Accessories {
		accessory, ok := snapshot.AccessoryByID(id)
		if !ok {
			continue
		}
		subtotal += accessory.Price * float64(qty)
	}

	sst := subtotal * SSTRate
	grandTotal := subtotal + sst + DeliveryFeeAmount

	return Financials{
		Subtotal:    subtotal,
		SST:         sst,
		DeliveryFee: DeliveryFeeAmount,
		GrandTotal:  grandTotal,
		Deposit:     grandTotal * DepositRate,
	}
}
