// Package model はRBFネットワークなどの推定器が満たすインターフェースと共通の状態管理を提供します。
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データ（m×k）に対する予測値（長さm）を返す
	Predict(Z mat.Matrix) (*mat.VecDense, error)
}

// Scorer はスコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は予測の決定係数（R²）を返す
	Score(Z mat.Matrix, y mat.Vector) (float64, error)
}

// Regressor は回帰モデルのインターフェース
type Regressor interface {
	Predictor
	Scorer

	// MSE は訓練データ上の平均二乗誤差を返す
	MSE() (float64, error)
}

// SupportSelector はサポート（中心点）を1つずつ追加できるモデルのインターフェース。
// 停止条件は呼び出し側が決める。
type SupportSelector interface {
	// AddFactor はサポートを1つ追加し、その選択ステップのスコアベクトルを返す
	AddFactor() ([]float64, error)

	// Supports は選択済みサポートのインデックスを選択順に返す
	Supports() []int
}

// IncrementalRegressor はサポートを逐次追加しながら使う回帰モデル
type IncrementalRegressor interface {
	Regressor
	SupportSelector
}
