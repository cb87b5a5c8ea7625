package model

import (
	"github.com/YuminosukeSato/rbfols/pkg/errors"
)

// BaseEstimator は訓練データの形状を保持する構造体
type BaseEstimator struct {
	nSamples  int
	nFeatures int
}

// SetDimensions は訓練データのサンプル数と特徴量数を記録する
func (e *BaseEstimator) SetDimensions(nSamples, nFeatures int) {
	e.nSamples = nSamples
	e.nFeatures = nFeatures
}

// Dims は訓練データのサンプル数と特徴量数を返す
func (e *BaseEstimator) Dims() (nSamples, nFeatures int) {
	return e.nSamples, e.nFeatures
}

// CheckFeatures は入力の特徴量数が訓練時と一致するか検証する
func (e *BaseEstimator) CheckFeatures(op string, got int) error {
	if got != e.nFeatures {
		return errors.NewDimensionError(op, e.nFeatures, got, 1)
	}
	return nil
}

// CheckSamples は入力のサンプル数が訓練時と一致するか検証する
func (e *BaseEstimator) CheckSamples(op string, got int) error {
	if got != e.nSamples {
		return errors.NewDimensionError(op, e.nSamples, got, 0)
	}
	return nil
}
