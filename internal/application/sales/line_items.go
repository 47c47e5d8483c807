package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	domaininv "github.com/joansel25/farmacia-api/internal/domain/inventory"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// AddDetail agrega una línea a una factura existente: valida stock bajo
// bloqueo, descuenta la cantidad, congela el precio unitario vigente y
// recalcula el total de la factura, todo en una transacción.
func (uc *InvoiceUseCase) AddDetail(ctx context.Context, invoiceID string, in dto.AddDetailRequest) (*dto.InvoiceDetailResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	var detail *entity.InvoiceDetail
	err := uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		inv, err := invoiceRepo.GetByID(invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := domaininv.ValidateSale(in.Quantity, product.Stock); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(product.ID, -in.Quantity); err != nil {
			return err
		}
		detail = &entity.InvoiceDetail{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price, // foto del precio vigente
			Subtotal:  domaininv.Subtotal(in.Quantity, product.Price),
		}
		if err := invoiceRepo.CreateDetail(detail); err != nil {
			return err
		}
		return uc.recomputeTotal(invoiceRepo, invoiceID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceDetailResponse{
		ID:        detail.ID,
		ProductID: detail.ProductID,
		Quantity:  detail.Quantity,
		UnitPrice: detail.UnitPrice,
		Subtotal:  detail.Subtotal,
	}, nil
}

// UpdateDetail cambia la cantidad de una línea. El stock se ajusta por el
// delta contra la reserva previa de la propia línea, el subtotal se recalcula
// con el precio unitario congelado y el total de la factura se vuelve a sumar.
func (uc *InvoiceUseCase) UpdateDetail(ctx context.Context, detailID string, in dto.UpdateDetailRequest) (*dto.InvoiceDetailResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	var detail *entity.InvoiceDetail
	err := uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		var err error
		detail, err = invoiceRepo.GetDetailByID(detailID)
		if err != nil {
			return err
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(detail.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		delta := in.Quantity - detail.Quantity
		if delta > 0 {
			// Solo se pide al inventario la diferencia; lo ya reservado cuenta.
			if err := domaininv.ValidateSale(delta, product.Stock); err != nil {
				return err
			}
		}
		if delta != 0 {
			if err := productRepo.AdjustStock(product.ID, -delta); err != nil {
				return err
			}
		}
		detail.Quantity = in.Quantity
		detail.Subtotal = domaininv.Subtotal(in.Quantity, detail.UnitPrice)
		if err := invoiceRepo.UpdateDetail(detail); err != nil {
			return err
		}
		return uc.recomputeTotal(invoiceRepo, detail.InvoiceID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceDetailResponse{
		ID:        detail.ID,
		ProductID: detail.ProductID,
		Quantity:  detail.Quantity,
		UnitPrice: detail.UnitPrice,
		Subtotal:  detail.Subtotal,
	}, nil
}

// DeleteDetail elimina una línea devolviendo su cantidad al inventario y
// recalculando el total de la factura.
func (uc *InvoiceUseCase) DeleteDetail(ctx context.Context, detailID string) error {
	return uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		detail, err := invoiceRepo.GetDetailByID(detailID)
		if err != nil {
			return err
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		if _, err := productRepo.GetForUpdate(detail.ProductID); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(detail.ProductID, detail.Quantity); err != nil {
			return err
		}
		if err := invoiceRepo.DeleteDetail(detail.ID); err != nil {
			return err
		}
		return uc.recomputeTotal(invoiceRepo, detail.InvoiceID)
	})
}

// recomputeTotal escribe en la factura la suma exacta de los subtotales de sus
// detalles vigentes. Debe llamarse dentro de la transacción que mutó detalles.
func (uc *InvoiceUseCase) recomputeTotal(invoiceRepo repository.InvoiceRepository, invoiceID string) error {
	details, err := invoiceRepo.ListDetailsByInvoice(invoiceID)
	if err != nil {
		return err
	}
	return invoiceRepo.UpdateTotal(invoiceID, domaininv.InvoiceTotal(details))
}
